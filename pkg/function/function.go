package function

import "go.uber.org/zap"

func Noop() {}

// Tap returns a function that runs f on its argument and returns the
// argument unchanged.
func Tap[T any](f func(T)) func(T) T {
	return func(v T) T {
		f(v)
		return v
	}
}

// LogTap is a Tap that writes the value to log at debug level.
func LogTap[T any](log *zap.Logger, msg string) func(T) T {
	return Tap(func(v T) {
		log.Debug(msg, zap.Any("value", v))
	})
}
