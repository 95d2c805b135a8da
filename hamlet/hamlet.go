// Package hamlet provides the "must be"/"wont be" assertion pair used in
// tests: must, wont := hamlet.Specifications(t).
package hamlet

import (
	"fmt"
	"reflect"
	"testing"
)

type Detective struct {
	t      *testing.T
	denial bool
}

// Specifications returns the positive and the negated assertion helper.
func Specifications(t *testing.T) (*Detective, *Detective) {
	return &Detective{t, false}, &Detective{t, true}
}

func (it *Detective) decide(truthful bool, form string, details ...interface{}) {
	it.t.Helper()
	if truthful == it.denial {
		it.t.Errorf(form, details...)
	}
}

func (it *Detective) True(value bool) {
	it.t.Helper()
	it.decide(value, "expected %v to be true (negated: %v)", value, it.denial)
}

func (it *Detective) Nil(value interface{}) {
	it.t.Helper()
	it.decide(isNil(value), "expected %#v to be nil (negated: %v)", value, it.denial)
}

func (it *Detective) Equal(expected, actual interface{}) {
	it.t.Helper()
	it.decide(reflect.DeepEqual(expected, actual), "expected %#v, got %#v (negated: %v)", expected, actual, it.denial)
}

func (it *Detective) Text(expected string, actual interface{}) {
	it.t.Helper()
	it.decide(expected == fmt.Sprintf("%v", actual), "expected %q, got %q (negated: %v)", expected, fmt.Sprintf("%v", actual), it.denial)
}

func (it *Detective) Panic(todo func()) {
	it.t.Helper()
	defer func() {
		it.t.Helper()
		it.decide(recover() != nil, "expected panic (negated: %v)", it.denial)
	}()
	todo()
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	reflected := reflect.ValueOf(value)
	switch reflected.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return reflected.IsNil()
	}
	return false
}
