package asm

import (
	"strings"
)

// MaxTokens bounds the tokens of one line: a mnemonic and three operands,
// with room to spare.
const MaxTokens = 8

// isDelimiter reports separators between tokens.
func isDelimiter(r rune) bool {
	switch r {
	case ',', ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	return false
}

// Tokenize splits a source line into its mnemonic and operands.
//
// Commas and whitespace separate tokens and are never part of one. Text
// after a ';' is a comment. A blank line yields no tokens.
func Tokenize(line string) (tokens []string, err error) {
	line, _, _ = strings.Cut(line, ";")

	tokens = strings.FieldsFunc(line, isDelimiter)
	if len(tokens) > MaxTokens {
		err = operandError(tokens[MaxTokens], ErrTooManyOperands)
		tokens = nil
	}

	return
}
