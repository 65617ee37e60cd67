// Package asm implements a single pass assembler for the CHIP-8 virtual
// machine.
//
// Each source line holds one instruction, a mnemonic followed by up to three
// comma or space separated operands. Lines are tokenized, dispatched on the
// mnemonic and encoded into a 16-bit opcode; the resulting Program is written
// as a big-endian stream of opcodes with no header and no load offset.
//
// Encoding is stateless across lines: there are no labels, equates or
// macros, so every line can be encoded independently.
package asm
