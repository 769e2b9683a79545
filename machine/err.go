package machine

import (
	"errors"

	"botvm/translate"
)

var f = translate.From

var (
	ErrProgram  = errors.New(f("program image"))
	ErrSnapshot = errors.New(f("snapshot"))
)
