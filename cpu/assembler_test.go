package cpu

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssemblerEmpty(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, prog.Len())
}

func TestAssemblerBasic(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"START: MOV UP, ACC",
		"  add 1   # increment",
		"SUB ACC",
		"MOV ACC DOWN",
		"JMP START",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)

	expected := []Instruction{
		{Op: OP_MOV, Src: OPERAND_UP, Dst: OPERAND_ACC},
		{Op: OP_ADD, Src: OPERAND_LIT, Lit: 1},
		{Op: OP_SUB, Src: OPERAND_ACC},
		{Op: OP_MOV, Src: OPERAND_ACC, Dst: OPERAND_DOWN},
		{Op: OP_JMP, Label: "START", Target: 0},
	}
	assert.Equal(expected, prog.Instructions)
	assert.Equal(0, prog.Labels["START"])
}

func TestAssemblerLabels(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"NOP",
		"LOOP: JNZ LOOP",
		"END:",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	assert.Equal(2, prog.Len())
	assert.Equal(1, prog.Labels["LOOP"])
	assert.Equal(1, prog.Instructions[1].Target)

	// A trailing label wraps back to the top of the program.
	prog, err = asm.Parse(strings.NewReader("JMP END\nNOP\nEND:"))
	assert.NoError(err)
	assert.Equal(0, prog.Instructions[0].Target)
}

func TestAssemblerLexing(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	// Commas are whitespace and mnemonics fold to uppercase.
	prog, err := asm.Parse(strings.NewReader("mov 10,acc # inc"))
	assert.NoError(err)
	assert.Equal(1, prog.Len())
	assert.Equal(Instruction{Op: OP_MOV, Src: OPERAND_LIT, Lit: 10, Dst: OPERAND_ACC}, prog.At(0))

	// A line is cut at MAX_LINE characters before anything else.
	prog, err = asm.Parse(strings.NewReader("NOP" + strings.Repeat(" ", MAX_LINE) + "FROB"))
	assert.NoError(err)
	assert.Equal(1, prog.Len())
	assert.Equal(OP_NOP, prog.At(0).Op)
}

func TestAssemblerErrors(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	for _, tc := range []struct {
		source   string
		sentinel error
	}{
		{"FROB", ErrOpcodeUnknown},
		{"ADD", ErrOperandMissing},
		{"NEG 1", ErrOperandExtra},
		{"ADD 1000", ErrValueRange},
		{"MOV 1 2", ErrOperandKind},
		{"X: NOP\nX: NOP", ErrLabelDuplicate},
	} {
		_, err := asm.Parse(strings.NewReader(tc.source))
		assert.ErrorIs(err, tc.sentinel, tc.source)

		var syn *ErrSyntax
		assert.ErrorAs(err, &syn, tc.source)
	}

	_, err := asm.Parse(strings.NewReader("JMP NOWHERE"))
	var missing ErrLabelMissing
	assert.True(errors.As(err, &missing))
	assert.Equal("NOWHERE", string(missing))

	_, err = asm.Parse(strings.NewReader(strings.Repeat("NOP\n", MAX_PROGRAM+1)))
	assert.ErrorIs(err, ErrProgramTooLong)
}

func TestAssemblerSave(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	source := []string{
		"",
		"@1",
		"MOV UP DOWN",
		"",
		"@10",
		"MOV UP ACC",
		"MOV ACC DOWN",
	}

	save, err := asm.ParseSave(strings.NewReader(strings.Join(source, "\n")))
	assert.NoError(err)
	assert.Equal(2, len(save))
	assert.Equal(1, save[1].Len())
	assert.Equal(2, save[10].Len())

	_, err = asm.ParseSave(strings.NewReader("NOP\n@0\n"))
	assert.ErrorIs(err, ErrMarker)

	_, err = asm.ParseSave(strings.NewReader("@0\nNOP\n@0\n"))
	assert.ErrorIs(err, ErrMarker)

	// Syntax errors carry the node and the line number of the whole file.
	_, err = asm.ParseSave(strings.NewReader("@0\nNOP\nFROB\n"))
	var en ErrNode
	assert.ErrorAs(err, &en)
	assert.Equal(0, en.Node)

	var syn *ErrSyntax
	assert.ErrorAs(err, &syn)
	assert.Equal(3, syn.LineNo)
}

func TestInstructionString(t *testing.T) {
	assert := assert.New(t)

	for _, tc := range []struct {
		in   Instruction
		text string
	}{
		{Instruction{Op: OP_NOP}, "NOP"},
		{Instruction{Op: OP_ADD, Src: OPERAND_LIT, Lit: -7}, "ADD -7"},
		{Instruction{Op: OP_MOV, Src: OPERAND_UP, Dst: OPERAND_ACC}, "MOV UP ACC"},
		{Instruction{Op: OP_JNZ, Label: "LOOP"}, "JNZ LOOP"},
	} {
		assert.Equal(tc.text, tc.in.String())
	}
}
