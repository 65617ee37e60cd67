// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ezrec/chip8asm/asm"
	"github.com/ezrec/chip8asm/internal"
	"github.com/ezrec/chip8asm/translate"
)

var f = translate.From

func main() {
	var output string
	var keepGoing bool
	var expressions bool
	var workers int
	var lang string
	var verbose bool

	flag.StringVar(&output, "o", "", "Output .ch8 file ('-' for stdout, default derived from source)")
	flag.BoolVar(&keepGoing, "k", false, "Keep going after an error, reporting every failing line")
	flag.BoolVar(&expressions, "e", false, "Evaluate $(...) expressions")
	flag.IntVar(&workers, "j", 1, "Lines to encode concurrently")
	flag.StringVar(&lang, "lang", "", "Message language (default from system locale)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: %v", os.Args[0], f("usage: %v [options] <source file>", os.Args[0]))
	}

	if len(lang) != 0 {
		translate.SetLocale(lang)
	}

	source := flag.Arg(0)
	if len(output) == 0 {
		output = internal.OutputName(source)
	}

	if output == "-" && internal.IsTerminal(os.Stdout) {
		log.Fatalf("%v: %v", source, f("refusing to write binary output to a terminal"))
	}

	assembler := &asm.Assembler{
		Verbose:     verbose,
		Expressions: expressions,
		Workers:     workers,
	}
	if keepGoing {
		assembler.Policy = asm.POLICY_CONTINUE
	}

	err := assemble(assembler, source, output, os.Stdout, os.Stderr)
	if err != nil {
		os.Exit(1)
	}
}

// assemble assembles source into output ('-' is stdout), printing every
// diagnostic to stderr. Nothing is written to output when assembly fails.
func assemble(assembler *asm.Assembler, source string, output string, stdout io.Writer, stderr io.Writer) (err error) {
	inf, err := os.Open(source)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return
	}
	defer inf.Close()

	prog, err := assembler.Parse(inf)
	if err != nil {
		report(stderr, source, err)
		return
	}

	if output == "-" {
		_, err = prog.WriteTo(stdout)
	} else {
		err = writeFile(prog, output)
	}
	if err != nil {
		fmt.Fprintf(stderr, "%v: %v\n", output, err)
		return
	}

	if assembler.Verbose {
		log.Printf("%v: %v", output, f("%d bytes", 2*len(prog.Instructions)))
	}

	return
}

// writeFile writes the image of prog to a new file at path.
func writeFile(prog *asm.Program, path string) (err error) {
	ouf, err := os.Create(path)
	if err != nil {
		return
	}

	_, err = prog.WriteTo(ouf)
	if err == nil {
		err = ouf.Close()
	} else {
		ouf.Close()
	}

	return
}

// report prints one diagnostic per failing line.
func report(stderr io.Writer, source string, err error) {
	type unwrapper interface {
		Unwrap() []error
	}

	errs := []error{err}
	if joined, ok := err.(unwrapper); ok {
		errs = joined.Unwrap()
	}

	for _, e := range errs {
		fmt.Fprintf(stderr, "%v: %v\n", source, e)
	}

	if len(errs) > 1 {
		fmt.Fprintf(stderr, "%v: %v\n", source, f("%d lines failed", len(errs)))
	}
}
