package asm

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(prog.Instructions))
	assert.Empty(prog.Binary())
}

func TestAssemblerProgram(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"CLS",
		"LD V0, 10",
		"ADD V0, V1",
		"JP 0x200",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	expected := []Instruction{
		{1, "CLS", []string{"CLS"}, 0x00e0},
		{2, "LD V0, 10", []string{"LD", "V0", "10"}, 0x600a},
		{3, "ADD V0, V1", []string{"ADD", "V0", "V1"}, 0x8014},
		{4, "JP 0x200", []string{"JP", "0x200"}, 0x1200},
	}
	assert.Equal(expected, prog.Instructions)

	assert.Equal([]byte{0x00, 0xe0, 0x60, 0x0a, 0x80, 0x14, 0x12, 0x00}, prog.Binary())
}

func TestAssemblerBlankLines(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"",
		"CLS",
		"   ",
		"; a comment",
		"\tRET ; return\r",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if assert.Len(prog.Instructions, 2) {
		assert.Equal(2, prog.Instructions[0].LineNo)
		assert.Equal(5, prog.Instructions[1].LineNo)
		assert.Equal("RET ; return", prog.Instructions[1].Line)
	}
	assert.Equal([]byte{0x00, 0xe0, 0x00, 0xee}, prog.Binary())
}

func TestAssemblerHalt(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	assert.Equal(POLICY_HALT, asm.Policy)

	program := []string{
		"CLS",
		"FOO V0",
		"RET",
		"LD V0, 0x100",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.True(errors.Is(err, ErrUnknownMnemonic))

	var syntax *ErrSyntax
	if assert.True(errors.As(err, &syntax)) {
		assert.Equal(2, syntax.LineNo)
		assert.Equal("FOO V0", syntax.Line)
		assert.Contains(syntax.Error(), "FOO V0")
	}

	assert.Len(prog.Instructions, 1)
	assert.Equal([]byte{0x00, 0xe0}, prog.Binary())
}

func TestAssemblerContinue(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{Policy: POLICY_CONTINUE}

	program := []string{
		"CLS",
		"FOO V0",
		"RET",
		"LD V0, 0x100",
		"SKP V1",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.Error(err)
	assert.True(errors.Is(err, ErrUnknownMnemonic))
	assert.True(errors.Is(err, ErrLargeDigit))

	joined, ok := err.(interface{ Unwrap() []error })
	if assert.True(ok) {
		errs := joined.Unwrap()
		if assert.Len(errs, 2) {
			var syntax *ErrSyntax
			assert.True(errors.As(errs[0], &syntax))
			assert.Equal(2, syntax.LineNo)
			assert.True(errors.As(errs[1], &syntax))
			assert.Equal(4, syntax.LineNo)
		}
	}

	assert.Equal([]byte{0x00, 0xe0, 0x00, 0xee, 0xe1, 0x9e}, prog.Binary())
}

func TestAssemblerContinueSingleError(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{Policy: POLICY_CONTINUE}

	prog, err := asm.Parse(strings.NewReader("CLS\nJP V2, 0x200\nRET"))

	var syntax *ErrSyntax
	if assert.True(errors.As(err, &syntax)) {
		assert.Equal(2, syntax.LineNo)
		assert.True(errors.Is(err, ErrMissingOperand))
	}
	assert.Len(prog.Instructions, 2)
}

// workload builds a program that uses every instruction form.
func workload(lines int) (program []string) {
	forms := []string{
		"CLS", "RET", "SYS 0x%03X", "JP 0x%03X", "JP V0, 0x%03X", "CALL 0x%03X",
		"SE V%X, 0x%02X", "SE V%X, V%X", "SNE V%X, %d", "SNE V%X, V%X",
		"LD V%X, V%X", "LD V%X, %d", "LD V%X, DT", "LD V%X, K", "LD V%X, [I]",
		"LD I, 0x%03X", "LD DT, V%X", "LD ST, V%X", "LD F, V%X", "LD B, V%X", "LD [I], V%X",
		"ADD V%X, V%X", "ADD V%X, %d", "ADD I, V%X", "OR V%X, V%X", "AND V%X, V%X",
		"XOR V%X, V%X", "SUB V%X, V%X", "SHR V%X, V%X", "SUBN V%X, V%X", "SHL V%X, V%X",
		"RND V%X, %d", "DRW V%X, V%X, %d", "SKP V%X", "SKNP V%X",
	}

	for n := range lines {
		form := forms[n%len(forms)]
		args := []any{}
		for range strings.Count(form, "%") {
			args = append(args, (n*7+len(args)*3)%16)
		}
		program = append(program, fmt.Sprintf(form, args...))
	}

	return
}

func TestAssemblerWorkers(t *testing.T) {
	assert := assert.New(t)

	source := strings.Join(workload(500), "\n")

	serial := &Assembler{}
	expected, err := serial.Parse(strings.NewReader(source))
	assert.NoError(err)
	assert.Len(expected.Instructions, 500)

	for _, workers := range []int{2, 4, 16} {
		parallel := &Assembler{Workers: workers}
		prog, err := parallel.Parse(strings.NewReader(source))
		assert.NoError(err, workers)
		assert.Equal(expected.Instructions, prog.Instructions, workers)
		assert.Equal(expected.Binary(), prog.Binary(), workers)
	}
}

func TestAssemblerWorkersHalt(t *testing.T) {
	assert := assert.New(t)

	program := workload(200)
	program[150] = "LD V0, 0x1000"
	program[42] = "FOO"
	program[7] = "SE VG, 1"

	asm := &Assembler{Workers: 8}
	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))

	var syntax *ErrSyntax
	if assert.True(errors.As(err, &syntax)) {
		assert.Equal(8, syntax.LineNo)
		assert.True(errors.Is(err, ErrUnknownRegister))
	}
	assert.Len(prog.Instructions, 7)

	asm.Policy = POLICY_CONTINUE
	prog, err = asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.True(errors.Is(err, ErrUnknownRegister))
	assert.True(errors.Is(err, ErrUnknownMnemonic))
	assert.True(errors.Is(err, ErrLargeDigit))
	assert.Len(prog.Instructions, 197)
}

func TestAssemblerReadError(t *testing.T) {
	assert := assert.New(t)

	source := "FOO\nCLS\n" + strings.Repeat("X", 70000) + "\n"

	asm := &Assembler{Policy: POLICY_CONTINUE}
	prog, err := asm.Parse(strings.NewReader(source))
	assert.True(errors.Is(err, bufio.ErrTooLong), err)
	assert.True(errors.Is(err, ErrUnknownMnemonic), err)
	assert.Len(prog.Instructions, 1)
}

func TestAssemblerExpressions(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{Expressions: true}

	program := []string{
		"LD I, $(0x200 + 5*2)",
		"DRW V0, V1, $(16 // 2)",
		"LD V2, $( (1 << 4) | 3 )",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	assert.Equal([]byte{0xa2, 0x0a, 0xd0, 0x18, 0x62, 0x13}, prog.Binary())
	if assert.Len(prog.Instructions, 3) {
		assert.Equal(program[0], prog.Instructions[0].Line)
		assert.Equal([]string{"LD", "I", "522"}, prog.Instructions[0].Words)
	}
}

func TestAssemblerExpressions_Errors(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{Expressions: true}

	_, err := asm.Parse(strings.NewReader("LD V0, $(1 +)"))
	assert.True(errors.Is(err, ErrExpression), err)

	_, err = asm.Parse(strings.NewReader("LD V0, $(\"text\")"))
	assert.True(errors.Is(err, ErrExpression), err)

	_, err = asm.Parse(strings.NewReader("LD V0, $(0x80 * 2)"))
	assert.True(errors.Is(err, ErrLargeDigit), err)

	_, err = asm.Parse(strings.NewReader("LD V0, $(1 - 2)"))
	assert.True(errors.Is(err, ErrLargeDigit), err)

	_, err = asm.Parse(strings.NewReader("LD V0, $(1 + (2)"))
	assert.True(errors.Is(err, ErrExpression), err)

	// Comments are never evaluated.
	prog, err := asm.Parse(strings.NewReader("CLS ; see $(foo)\nLD V0, $(1) ; note )\nLD V1, $((1))"))
	assert.NoError(err)
	assert.Equal([]byte{0x00, 0xe0, 0x60, 0x01, 0x61, 0x01}, prog.Binary())
	if assert.Len(prog.Instructions, 3) {
		assert.Equal([]string{"LD", "V0", "1"}, prog.Instructions[1].Words)
		assert.Equal("LD V0, $(1) ; note )", prog.Instructions[1].Line)
	}

	asm.Expressions = false
	_, err = asm.Parse(strings.NewReader("LD V0, $(1)"))
	assert.True(errors.Is(err, ErrLargeDigit), err)
}

func TestPolicy(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("halt", POLICY_HALT.String())
	assert.Equal("continue", POLICY_CONTINUE.String())
}
