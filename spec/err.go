package spec

import (
	"errors"

	"github.com/ezrec/utis100/translate"
)

var f = translate.From

var (
	ErrLayout      = errors.New(f("layout does not match grid size"))
	ErrTile        = errors.New(f("unknown tile kind"))
	ErrStreamKind  = errors.New(f("unknown stream kind"))
	ErrExpectInt   = errors.New(f("expected an integer"))
	ErrExpectList  = errors.New(f("expected a list"))
	ErrExpectTuple = errors.New(f("expected a tuple"))
	ErrNotFunction = errors.New(f("not a function"))
)

// ErrScript wraps a malformed value produced by a puzzle script function.
type ErrScript struct {
	Func string
	Err  error
}

func (e ErrScript) Error() string {
	return f("%v(): %v", e.Func, e.Err)
}

func (e ErrScript) Unwrap() error {
	return e.Err
}
