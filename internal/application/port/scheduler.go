package port

import "time"

// Timer is a pending delayed action.
type Timer interface {
	// Stop cancels the action. It reports false if the action already ran or
	// was already stopped; that is not an error.
	Stop() bool
}

// Scheduler runs an action after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
	Now() time.Time
}
