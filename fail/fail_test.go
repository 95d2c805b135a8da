package fail_test

import (
	"errors"
	"testing"

	"github.com/sbomweld/sbomweld/fail"
	"github.com/sbomweld/sbomweld/hamlet"
)

func TestAroundCapturesRaisedFailures(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	broken := func() (err error) {
		defer fail.Around(&err)
		fail.On(true, "step %d broke", 7)
		return nil
	}
	err := broken()
	wont.Nil(err)
	must.Equal("step 7 broke", err.Error())

	healthy := func() (err error) {
		defer fail.Around(&err)
		fail.On(false, "never raised")
		return nil
	}
	must.Nil(healthy())
}

func TestFastRaisesGivenError(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	original := errors.New("original cause")
	forwarded := func() (err error) {
		defer fail.Around(&err)
		fail.Fast(original)
		return nil
	}
	err := forwarded()
	wont.Nil(err)
	must.True(errors.Is(err, original))

	quiet := func() (err error) {
		defer fail.Around(&err)
		fail.Fast(nil)
		return nil
	}
	must.Nil(quiet())
}

func TestForeignPanicsPassThrough(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	must.Panic(func() {
		var err error
		defer fail.Around(&err)
		panic("not raised by this package")
	})
}
