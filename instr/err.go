package instr

import (
	"botvm/translate"
)

var f = translate.From

// ErrRegisterMissing reports a behavior that needs a named register the
// machine's register file does not carry.
type ErrRegisterMissing string

func (er ErrRegisterMissing) Error() string {
	return f("register %s missing from the register file", string(er))
}

func (er ErrRegisterMissing) Is(err error) (ok bool) {
	_, ok = err.(ErrRegisterMissing)
	return
}
