package machine

import (
	"errors"

	"github.com/ezrec/utis100/translate"
)

var f = translate.From

var (
	ErrLayout = errors.New(f("layout does not cover the grid"))
	ErrStream = errors.New(f("stream column outside the grid"))
)
