package common

import (
	"fmt"
	"time"
)

type Duration time.Duration

func (it Duration) Truncate(granularity time.Duration) Duration {
	return Duration(time.Duration(it).Truncate(granularity))
}

// String renders the duration as whole minutes and seconds, the form used
// in the final run summary.
func (it Duration) String() string {
	elapsed := time.Duration(it)
	if elapsed < time.Minute {
		return fmt.Sprintf("%ds", int(elapsed.Seconds()))
	}
	minutes := int(elapsed.Minutes())
	seconds := int(elapsed.Seconds()) - 60*minutes
	return fmt.Sprintf("%dm%02ds", minutes, seconds)
}

type stopwatch struct {
	message string
	started time.Time
}

func Stopwatch(form string, details ...interface{}) *stopwatch {
	return &stopwatch{
		message: fmt.Sprintf(form, details...),
		started: time.Now(),
	}
}

func (it *stopwatch) When() int64 {
	return it.started.Unix()
}

func (it *stopwatch) Elapsed() Duration {
	return Duration(time.Since(it.started))
}

// Report logs the elapsed time and returns it.
func (it *stopwatch) Report() Duration {
	elapsed := it.Elapsed()
	Log("%s %s", it.message, elapsed)
	return elapsed
}
