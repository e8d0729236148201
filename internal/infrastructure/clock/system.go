// Package clock provides the wall-clock scheduler.
package clock

import (
	"time"

	"github.com/bnema/tinyguard/internal/application/port"
)

// System schedules on the runtime timer heap.
type System struct{}

// New returns the system scheduler.
func New() System {
	return System{}
}

func (System) AfterFunc(d time.Duration, f func()) port.Timer {
	return time.AfterFunc(d, f)
}

func (System) Now() time.Time {
	return time.Now()
}

var _ port.Scheduler = System{}
