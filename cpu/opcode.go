// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"strconv"
	"strings"

	"github.com/ezrec/utis100/fabric"
)

// Value limits for registers and literals.
const (
	VALUE_MIN = -999
	VALUE_MAX = 999
)

// Clamp saturates a value to the representable range.
func Clamp(value int) int {
	if value < VALUE_MIN {
		return VALUE_MIN
	}
	if value > VALUE_MAX {
		return VALUE_MAX
	}
	return value
}

//go:generate go tool stringer -linecomment -type=Op
type Op int

const (
	OP_NOP  Op = iota // NOP
	OP_MOV            // MOV
	OP_SWP            // SWP
	OP_SAV            // SAV
	OP_ADD            // ADD
	OP_SUB            // SUB
	OP_NEG            // NEG
	OP_JMP            // JMP
	OP_JEZ            // JEZ
	OP_JNZ            // JNZ
	OP_JGZ            // JGZ
	OP_JLZ            // JLZ
	OP_JRO            // JRO
	OP_HCF            // HCF
	OP_PUSH           // PUSH
	OP_POP            // POP
)

// IsJump reports whether the opcode takes a label target.
func (op Op) IsJump() bool {
	switch op {
	case OP_JMP, OP_JEZ, OP_JNZ, OP_JGZ, OP_JLZ:
		return true
	}
	return false
}

//go:generate go tool stringer -linecomment -type=Operand
type Operand int

const (
	OPERAND_NONE  Operand = iota // NONE
	OPERAND_ACC                  // ACC
	OPERAND_NIL                  // NIL
	OPERAND_UP                   // UP
	OPERAND_DOWN                 // DOWN
	OPERAND_LEFT                 // LEFT
	OPERAND_RIGHT                // RIGHT
	OPERAND_ANY                  // ANY
	OPERAND_LAST                 // LAST
	OPERAND_LIT                  // LIT
)

// IsPort reports whether reading or writing the operand touches the fabric.
func (o Operand) IsPort() bool {
	switch o {
	case OPERAND_UP, OPERAND_DOWN, OPERAND_LEFT, OPERAND_RIGHT,
		OPERAND_ANY, OPERAND_LAST:
		return true
	}
	return false
}

// Dir maps a concrete port operand onto a fabric direction. ANY and LAST
// have no fixed direction and report ok == false.
func (o Operand) Dir() (d fabric.Dir, ok bool) {
	switch o {
	case OPERAND_UP:
		return fabric.DIR_UP, true
	case OPERAND_DOWN:
		return fabric.DIR_DOWN, true
	case OPERAND_LEFT:
		return fabric.DIR_LEFT, true
	case OPERAND_RIGHT:
		return fabric.DIR_RIGHT, true
	}
	return 0, false
}

// Writable reports whether the operand is a legal MOV destination.
func (o Operand) Writable() bool {
	switch o {
	case OPERAND_ACC, OPERAND_NIL:
		return true
	}
	return o.IsPort()
}

// Instruction is one decoded line of node assembly.
type Instruction struct {
	Op     Op
	Src    Operand // source operand, OPERAND_NONE if the opcode takes none
	Lit    int     // literal value when Src == OPERAND_LIT
	Dst    Operand // destination operand for MOV
	Target int     // resolved instruction index for jumps
	Label  string  // jump label as written
}

// Validate checks operand shape against the opcode.
func (in Instruction) Validate() (err error) {
	switch in.Op {
	case OP_NOP, OP_SWP, OP_SAV, OP_NEG, OP_HCF:
		if in.Src != OPERAND_NONE || in.Dst != OPERAND_NONE {
			return ErrOperandExtra
		}
	case OP_MOV:
		if in.Src == OPERAND_NONE || in.Dst == OPERAND_NONE {
			return ErrOperandMissing
		}
		if !in.Dst.Writable() {
			return ErrOperandKind
		}
	case OP_ADD, OP_SUB, OP_JRO, OP_PUSH:
		if in.Src == OPERAND_NONE {
			return ErrOperandMissing
		}
		if in.Dst != OPERAND_NONE {
			return ErrOperandExtra
		}
	case OP_POP:
		if in.Src != OPERAND_NONE {
			return ErrOperandExtra
		}
		if in.Dst == OPERAND_NONE {
			return ErrOperandMissing
		}
		if !in.Dst.Writable() {
			return ErrOperandKind
		}
	case OP_JMP, OP_JEZ, OP_JNZ, OP_JGZ, OP_JLZ:
		if in.Label == "" {
			return ErrOperandMissing
		}
	default:
		return ErrOpcodeUnknown
	}
	if in.Src == OPERAND_LIT && (in.Lit < VALUE_MIN || in.Lit > VALUE_MAX) {
		return ErrValueRange
	}
	return nil
}

func (in Instruction) String() string {
	var sb strings.Builder
	sb.WriteString(in.Op.String())
	operand := func(o Operand) {
		sb.WriteByte(' ')
		if o == OPERAND_LIT {
			sb.WriteString(strconv.Itoa(in.Lit))
		} else {
			sb.WriteString(o.String())
		}
	}
	if in.Op.IsJump() {
		sb.WriteByte(' ')
		sb.WriteString(in.Label)
		return sb.String()
	}
	if in.Src != OPERAND_NONE {
		operand(in.Src)
	}
	if in.Dst != OPERAND_NONE {
		operand(in.Dst)
	}
	return sb.String()
}
