package asm

import (
	"strconv"
	"strings"
)

// Width is the bit width of an immediate operand field.
type Width uint

const (
	WIDTH_NIBBLE  = Width(4)  // n
	WIDTH_BYTE    = Width(8)  // kk
	WIDTH_ADDRESS = Width(12) // nnn
)

// Mask returns the largest value that fits in the field.
func (w Width) Mask() uint16 {
	return uint16(1)<<w - 1
}

// parseNumber parses a decimal or 0x prefixed hexadecimal literal.
func parseNumber(word string) (value int64, err error) {
	digits, base := word, 10

	sign := ""
	if len(digits) > 0 && (digits[0] == '+' || digits[0] == '-') {
		sign, digits = digits[:1], digits[1:]
	}
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		digits, base = digits[2:], 16
	}
	if len(digits) == 0 || digits[0] == '+' || digits[0] == '-' {
		err = strconv.ErrSyntax
		return
	}

	return strconv.ParseInt(sign+digits, base, 64)
}

// DecodeImmediate decodes a numeric literal for a field of the given width.
//
// The literal is decimal, or hexadecimal with a 0x prefix. Malformed,
// negative or oversized literals fail with ErrLargeDigit.
func DecodeImmediate(word string, width Width) (value uint16, err error) {
	v64, err := parseNumber(word)
	if err != nil || v64 < 0 || v64 > int64(width.Mask()) {
		err = operandError(word, ErrLargeDigit)
		return
	}

	value = uint16(v64) & width.Mask()
	return
}
