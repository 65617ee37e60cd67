package asm

import (
	"errors"

	"github.com/ezrec/chip8asm/translate"
)

var f = translate.From

var (
	// Encoding errors
	ErrUnknownMnemonic = errors.New(f("unknown mnemonic"))
	ErrMissingOperand  = errors.New(f("missing operand"))
	ErrMissingRegister = errors.New(f("missing register"))
	ErrUnknownRegister = errors.New(f("unknown register"))
	ErrInvalidOperand  = errors.New(f("invalid operand"))
	ErrLargeDigit      = errors.New(f("too large digit"))

	// Line errors
	ErrTooManyOperands = errors.New(f("too many operands"))
	ErrExpression      = errors.New(f("invalid expression"))
)

// ErrOperand names the operand token that caused Err.
type ErrOperand struct {
	Operand string
	Err     error
}

func (err *ErrOperand) Error() string {
	return f("'%v' %v", err.Operand, err.Err)
}

func (err *ErrOperand) Unwrap() error {
	return err.Err
}

// operandError wraps kind with the offending token.
func operandError(operand string, kind error) error {
	return &ErrOperand{Operand: operand, Err: kind}
}

// ErrSyntax places an error at a source line.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

func (err ErrParseExpression) Is(target error) bool {
	return target == ErrExpression
}

// kinds lists the error taxonomy in reporting order.
var kinds = []error{
	ErrUnknownMnemonic,
	ErrMissingOperand,
	ErrMissingRegister,
	ErrUnknownRegister,
	ErrInvalidOperand,
	ErrLargeDigit,
	ErrTooManyOperands,
	ErrExpression,
}

// Kind returns the sentinel error classifying err, or nil if err is not an
// assembly error.
func Kind(err error) error {
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
