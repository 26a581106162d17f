package fabric

import (
	"errors"

	"github.com/ezrec/utis100/translate"
)

var f = translate.From

var (
	// ErrStackFull is returned by a stack node refusing a push at capacity.
	ErrStackFull = errors.New(f("stack full"))
)
