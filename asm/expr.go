package asm

import (
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// parenEval does compile-time $(...) evaluations
func parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, nil)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// closingParen returns the index in s of the ')' that closes an already
// opened '(', or -1 if it is never closed.
func closingParen(s string) int {
	depth := 0
	for n, c := range s {
		switch c {
		case '(':
			depth++
		case ')':
			if depth == 0 {
				return n
			}
			depth--
		}
	}
	return -1
}

// expandExpressions replaces each $(...) in line with its decimal value.
// Parentheses nest; an unclosed $( is an invalid expression.
func expandExpressions(line string) (expanded string, err error) {
	var out strings.Builder
	for {
		start := strings.Index(line, "$(")
		if start < 0 {
			break
		}
		out.WriteString(line[:start])

		body := line[start+2:]
		end := closingParen(body)
		if end < 0 {
			err = ErrParseExpression(body)
			return
		}

		var value int64
		value, err = parenEval(body[:end])
		if err != nil {
			return
		}
		out.WriteString(strconv.FormatInt(value, 10))

		line = body[end+1:]
	}
	out.WriteString(line)

	expanded = out.String()
	return
}
