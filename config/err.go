package config

import (
	"botvm/translate"
)

var f = translate.From

// ErrConfigValue reports a configuration key bound to something other
// than an integer.
type ErrConfigValue string

func (ec ErrConfigValue) Error() string {
	return f("config key %v is not an integer", string(ec))
}

func (ec ErrConfigValue) Is(err error) (ok bool) {
	_, ok = err.(ErrConfigValue)
	return
}
