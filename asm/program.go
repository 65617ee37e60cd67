package asm

import (
	"io"
	"iter"
)

// Instruction is one assembled source line.
type Instruction struct {
	LineNo int      // 1-based source line number.
	Line   string   // Source text.
	Words  []string // Tokens of the line.
	Opcode Opcode   // Encoded instruction.
}

// Program is an assembled CHIP-8 image.
type Program struct {
	Instructions []Instruction
}

// Debug locates the source of a byte offset in the image.
type Debug struct {
	*Instruction
	Index int // Byte within the opcode, 0 for the high byte.
}

// Debug returns the instruction covering offset; Instruction is nil when
// offset is past the end of the image.
func (prog *Program) Debug(offset uint16) (dbg Debug) {
	n := int(offset / 2)
	if n < len(prog.Instructions) {
		dbg = Debug{
			Instruction: &prog.Instructions[n],
			Index:       int(offset % 2),
		}
	}

	return
}

// Lookup returns the instruction whose opcode covers offset.
func (prog *Program) Lookup(offset uint16) (inst Instruction, ok bool) {
	dbg := prog.Debug(offset)
	if dbg.Instruction == nil {
		return
	}

	return *dbg.Instruction, true
}

// Opcodes iterates the opcodes of the image by byte offset.
func (prog *Program) Opcodes() iter.Seq2[uint16, Opcode] {
	return func(yield func(offset uint16, op Opcode) bool) {
		for n, inst := range prog.Instructions {
			if !yield(uint16(n*2), inst.Opcode) {
				return
			}
		}
	}
}

// Binary returns the image: each opcode high byte first, in source order.
func (prog *Program) Binary() (bins []byte) {
	bins = make([]byte, 0, 2*len(prog.Instructions))
	for _, op := range prog.Opcodes() {
		data := op.Bytes()
		bins = append(bins, data[:]...)
	}

	return
}

// WriteTo writes the image to w.
func (prog *Program) WriteTo(w io.Writer) (n int64, err error) {
	written, err := w.Write(prog.Binary())
	n = int64(written)
	return
}
