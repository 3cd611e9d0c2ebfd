// Package function holds helpers that wrap other functions.
//
// Noop, Tap and LogTap are pure pass-throughs for use inside chains.
// Debounce and Throttle are the only stateful helpers in fnbox: they rate
// limit calls with time.AfterFunc and guard their state with a mutex, so the
// returned functions are safe to call from several goroutines.
package function
