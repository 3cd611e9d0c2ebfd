package function

import "time"

type stopper interface {
	Stop() bool
}

// afterFunc schedules f after d. Tests swap it for a manual scheduler.
type afterFunc func(d time.Duration, f func()) stopper

func realAfterFunc(d time.Duration, f func()) stopper {
	return time.AfterFunc(d, f)
}
