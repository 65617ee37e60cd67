// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"errors"
	"io"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Policy selects what the assembler does after a line fails to encode.
type Policy int

const (
	POLICY_HALT     = Policy(0) // halt
	POLICY_CONTINUE = Policy(1) // continue
)

func (policy Policy) String() string {
	if policy == POLICY_CONTINUE {
		return "continue"
	}
	return "halt"
}

// Assembler is a single pass, line at a time CHIP-8 assembler.
type Assembler struct {
	Verbose     bool   // If set, verbosely logs the assembler actions.
	Policy      Policy // Error policy.
	Expressions bool   // If set, $(...) expressions are evaluated before encoding.
	Workers     int    // Lines encoded concurrently; 0 or 1 encodes in order.
}

// lineResult is the outcome of assembling one source line.
type lineResult struct {
	inst  Instruction
	empty bool
	err   error
}

// assembleLine encodes one source line. Lines without tokens are empty.
func (asm *Assembler) assembleLine(lineno int, text string) (result lineResult) {
	defer func() {
		if result.err != nil {
			result.err = &ErrSyntax{LineNo: lineno, Line: strings.TrimSpace(text), Err: result.err}
		}
	}()

	line := text
	if asm.Expressions {
		line, _, _ = strings.Cut(text, ";")
		line, result.err = expandExpressions(line)
		if result.err != nil {
			return
		}
	}

	words, err := Tokenize(line)
	if err != nil {
		result.err = err
		return
	}

	if len(words) == 0 {
		result.empty = true
		return
	}

	op, err := Encode(words)
	if err != nil {
		result.err = err
		return
	}

	result.inst = Instruction{LineNo: lineno, Line: strings.TrimSpace(text), Words: words, Opcode: op}
	return
}

// encodeAll encodes every line, Workers at a time.
func (asm *Assembler) encodeAll(lines []string) (results []lineResult) {
	results = make([]lineResult, len(lines))

	group := errgroup.Group{}
	group.SetLimit(asm.Workers)
	for n, text := range lines {
		group.Go(func() error {
			results[n] = asm.assembleLine(n+1, text)
			return results[n].err
		})
	}
	// Every line is reported by index below, not through the group.
	_ = group.Wait()

	return
}

// collect adds a line result to prog, returning true if assembly must stop.
func (asm *Assembler) collect(prog *Program, errs *[]error, result lineResult) (stop bool) {
	if result.err != nil {
		if asm.Verbose {
			log.Printf("%v", result.err)
		}
		*errs = append(*errs, result.err)
		return asm.Policy == POLICY_HALT
	}

	if result.empty {
		return
	}

	if asm.Verbose {
		log.Printf("%03x: %v %v\n", 2*len(prog.Instructions), result.inst.Opcode, result.inst.Line)
	}
	prog.Instructions = append(prog.Instructions, result.inst)

	return
}

// Parse assembles an input stream into a Program.
//
// Under POLICY_HALT the first failing line ends assembly and its *ErrSyntax
// is returned. Under POLICY_CONTINUE every line is assembled and all
// failures are returned joined. In both cases prog holds the lines that did
// encode, in source order.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var errs []error
	defer func() {
		switch {
		case err != nil:
			if len(errs) > 0 {
				err = errors.Join(append(errs, err)...)
			}
		case len(errs) == 1:
			err = errs[0]
		default:
			err = errors.Join(errs...)
		}
	}()

	prog = &Program{}

	if asm.Workers > 1 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err = scanner.Err(); err != nil {
			return
		}

		for _, result := range asm.encodeAll(lines) {
			if asm.collect(prog, &errs, result) {
				return
			}
		}
		return
	}

	var lineno int
	for scanner.Scan() {
		lineno += 1
		if asm.collect(prog, &errs, asm.assembleLine(lineno, scanner.Text())) {
			return
		}
	}

	err = scanner.Err()
	return
}
