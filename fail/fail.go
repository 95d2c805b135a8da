// Package fail implements the internal shortcut error style: multi-step
// functions declare `defer fail.Around(&err)` and then guard each step with
// `fail.On(condition, form, ...)`.
package fail

import "fmt"

type failure struct {
	error
}

// Around recovers a failure raised by On/Fast into the given error slot.
// Foreign panics are passed through untouched.
func Around(err *error) {
	catch := recover()
	if catch == nil {
		return
	}
	wrapped, ok := catch.(*failure)
	if !ok {
		panic(catch)
	}
	*err = wrapped.error
}

// On raises a failure when the condition holds.
func On(condition bool, form string, details ...interface{}) {
	if condition {
		panic(&failure{fmt.Errorf(form, details...)})
	}
}

// Fast raises the given error when it is not nil.
func Fast(err error) {
	if err != nil {
		panic(&failure{err})
	}
}
