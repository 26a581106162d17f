package cpu

import (
	"errors"

	"github.com/ezrec/utis100/translate"
)

var f = translate.From

var (
	ErrOpcodeUnknown  = errors.New(f("unknown opcode"))
	ErrOperandKind    = errors.New(f("bad operand"))
	ErrOperandMissing = errors.New(f("missing operand"))
	ErrOperandExtra   = errors.New(f("unexpected operand"))
	ErrValueRange     = errors.New(f("value out of range"))
	ErrProgramTooLong = errors.New(f("program too long"))
	ErrLabelDuplicate = errors.New(f("duplicate label"))
	ErrMarker         = errors.New(f("invalid node marker"))
)

// ErrLabelMissing is a jump to a label no line defines.
type ErrLabelMissing string

func (e ErrLabelMissing) Error() string {
	return f("label %v undefined", string(e))
}

// ErrNode wraps an assembly error with the save-file node it occurred in.
type ErrNode struct {
	Node int
	Err  error
}

func (e ErrNode) Error() string {
	return f("@%v: %v", e.Node, e.Err)
}

func (e ErrNode) Unwrap() error {
	return e.Err
}

// ErrSyntax wraps an assembly error with its source location.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (e ErrSyntax) Error() string {
	return f("line %d '%v' %v", e.LineNo, e.Line, e.Err)
}

func (e ErrSyntax) Unwrap() error {
	return e.Err
}
