// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"errors"
	"io"
	"log"
	"strconv"
	"strings"
)

// MAX_LINE is the longest source line a node editor accepts; anything past
// it is discarded before lexing.
const MAX_LINE = 18

// Assembler is a single pass assembler for node programs.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.
}

// opMap is a map of mnemonics to opcodes.
var opMap = map[string]Op{
	"NOP":  OP_NOP,
	"MOV":  OP_MOV,
	"SWP":  OP_SWP,
	"SAV":  OP_SAV,
	"ADD":  OP_ADD,
	"SUB":  OP_SUB,
	"NEG":  OP_NEG,
	"JMP":  OP_JMP,
	"JEZ":  OP_JEZ,
	"JNZ":  OP_JNZ,
	"JGZ":  OP_JGZ,
	"JLZ":  OP_JLZ,
	"JRO":  OP_JRO,
	"HCF":  OP_HCF,
	"PUSH": OP_PUSH,
	"POP":  OP_POP,
}

// operandMap is a map of named operands. Anything else must be a literal.
var operandMap = map[string]Operand{
	"ACC":   OPERAND_ACC,
	"NIL":   OPERAND_NIL,
	"UP":    OPERAND_UP,
	"DOWN":  OPERAND_DOWN,
	"LEFT":  OPERAND_LEFT,
	"RIGHT": OPERAND_RIGHT,
	"ANY":   OPERAND_ANY,
	"LAST":  OPERAND_LAST,
}

// lexLine splits one source line into uppercase words. Commas count as
// whitespace, '#' starts a comment, and the line is cut at MAX_LINE
// characters.
func lexLine(text string) (words []string) {
	if len(text) > MAX_LINE {
		text = text[:MAX_LINE]
	}
	text, _, _ = strings.Cut(text, "#")
	text = strings.ToUpper(text)
	text = strings.ReplaceAll(text, ",", " ")
	return strings.Fields(text)
}

// parseOperand decodes a named operand or a literal value.
func parseOperand(word string) (o Operand, lit int, err error) {
	o, ok := operandMap[word]
	if ok {
		return o, 0, nil
	}
	lit, err = strconv.Atoi(word)
	if err != nil {
		return OPERAND_NONE, 0, ErrOperandKind
	}
	if lit < VALUE_MIN || lit > VALUE_MAX {
		return OPERAND_NONE, 0, ErrValueRange
	}
	return OPERAND_LIT, lit, nil
}

// parseWords decodes one instruction from its lexed words.
func parseWords(words []string) (in Instruction, err error) {
	op, ok := opMap[words[0]]
	if !ok {
		return in, ErrOpcodeUnknown
	}
	in.Op = op

	args := words[1:]
	if op.IsJump() {
		if len(args) != 1 {
			err = ErrOperandMissing
			if len(args) > 1 {
				err = ErrOperandExtra
			}
			return
		}
		in.Label = args[0]
		return in, in.Validate()
	}

	if len(args) > 2 {
		return in, ErrOperandExtra
	}
	if len(args) > 0 {
		in.Src, in.Lit, err = parseOperand(args[0])
		if err != nil {
			return
		}
	}
	if len(args) > 1 {
		in.Dst, _, err = parseOperand(args[1])
		if err != nil {
			return
		}
		if in.Dst == OPERAND_LIT {
			return in, ErrOperandKind
		}
	}

	// POP takes only a destination.
	if op == OP_POP && in.Src != OPERAND_NONE && in.Dst == OPERAND_NONE {
		in.Dst, in.Src = in.Src, OPERAND_NONE
		if in.Dst == OPERAND_LIT {
			return in, ErrOperandKind
		}
	}

	return in, in.Validate()
}

// Parse assembles one node's program from source text.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	prog = &Program{Labels: map[string]int{}}

	for scanner.Scan() {
		line = scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}

		words := lexLine(line)

		// LABEL: prefixes, possibly followed by an instruction.
		for len(words) > 0 {
			label, rest, found := strings.Cut(words[0], ":")
			if !found {
				break
			}
			if label == "" {
				err = ErrOpcodeUnknown
				return nil, err
			}
			_, dup := prog.Labels[label]
			if dup {
				err = ErrLabelDuplicate
				return nil, err
			}
			prog.Labels[label] = len(prog.Instructions)
			if rest != "" {
				words[0] = rest
			} else {
				words = words[1:]
			}
		}
		if len(words) == 0 {
			continue
		}

		in, perr := parseWords(words)
		if perr != nil {
			err = perr
			return nil, err
		}
		if len(prog.Instructions) >= MAX_PROGRAM {
			err = ErrProgramTooLong
			return nil, err
		}
		prog.Instructions = append(prog.Instructions, in)
	}
	if err = scanner.Err(); err != nil {
		return nil, err
	}

	// Resolve jump targets. A label on the final line, past the last
	// instruction, wraps to the top of the program.
	for pc, in := range prog.Instructions {
		if !in.Op.IsJump() {
			continue
		}
		target, ok := prog.Labels[in.Label]
		if !ok {
			err = ErrLabelMissing(in.Label)
			return nil, err
		}
		if target >= len(prog.Instructions) {
			target = 0
		}
		prog.Instructions[pc].Target = target
	}

	return prog, nil
}

// ParseSave assembles a whole save file. Each "@n" marker starts the
// program for node n; text before the first marker must be blank.
func (asm *Assembler) ParseSave(input io.Reader) (save Save, err error) {
	scanner := bufio.NewScanner(input)

	var lineno int
	node := -1
	var body strings.Builder
	bodyStart := 0
	save = Save{}

	flush := func() (err error) {
		if node < 0 {
			return nil
		}
		prog, err := asm.Parse(strings.NewReader(body.String()))
		if err != nil {
			var syn *ErrSyntax
			if errors.As(err, &syn) {
				syn.LineNo += bodyStart
			}
			return ErrNode{Node: node, Err: err}
		}
		save[node] = prog
		body.Reset()
		return nil
	}

	for scanner.Scan() {
		line := scanner.Text()
		lineno += 1

		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "@") {
			n, aerr := strconv.Atoi(trimmed[1:])
			if aerr != nil || n < 0 {
				err = &ErrSyntax{LineNo: lineno, Line: line, Err: ErrMarker}
				return nil, err
			}
			if err = flush(); err != nil {
				return nil, err
			}
			_, dup := save[n]
			if dup {
				err = &ErrSyntax{LineNo: lineno, Line: line, Err: ErrMarker}
				return nil, err
			}
			node = n
			save[n] = nil
			bodyStart = lineno
			continue
		}

		if node < 0 {
			if trimmed != "" {
				err = &ErrSyntax{LineNo: lineno, Line: line, Err: ErrMarker}
				return nil, err
			}
			continue
		}

		body.WriteString(line)
		body.WriteByte('\n')
	}
	if err = scanner.Err(); err != nil {
		return nil, err
	}
	if err = flush(); err != nil {
		return nil, err
	}

	return save, nil
}
