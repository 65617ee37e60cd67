package asm

import (
	"encoding/binary"
	"fmt"
)

// Opcode is a 16-bit CHIP-8 machine instruction.
type Opcode uint16

// Opcode class templates, the high nibble of every instruction.
const (
	OP_SYS  = Opcode(0x0000) // 0nnn
	OP_JP   = Opcode(0x1000) // 1nnn
	OP_CALL = Opcode(0x2000) // 2nnn
	OP_SE   = Opcode(0x3000) // 3xkk
	OP_SNE  = Opcode(0x4000) // 4xkk
	OP_SER  = Opcode(0x5000) // 5xy0
	OP_LD   = Opcode(0x6000) // 6xkk
	OP_ADD  = Opcode(0x7000) // 7xkk
	OP_ALU  = Opcode(0x8000) // 8xy_
	OP_SNER = Opcode(0x9000) // 9xy0
	OP_LDI  = Opcode(0xa000) // Annn
	OP_JPV0 = Opcode(0xb000) // Bnnn
	OP_RND  = Opcode(0xc000) // Cxkk
	OP_DRW  = Opcode(0xd000) // Dxyn
	OP_KEY  = Opcode(0xe000) // Ex__
	OP_MISC = Opcode(0xf000) // Fx__
)

// Fixed instructions.
const (
	OP_CLS = Opcode(0x00e0)
	OP_RET = Opcode(0x00ee)
)

// Low nibble of the 8xy_ register-register ALU group.
const (
	ALU_LD   = Opcode(0x0)
	ALU_OR   = Opcode(0x1)
	ALU_AND  = Opcode(0x2)
	ALU_XOR  = Opcode(0x3)
	ALU_ADD  = Opcode(0x4)
	ALU_SUB  = Opcode(0x5)
	ALU_SHR  = Opcode(0x6)
	ALU_SUBN = Opcode(0x7)
	ALU_SHL  = Opcode(0xe)
)

// Low byte of the Ex__ and Fx__ groups.
const (
	KEY_SKP    = Opcode(0x9e)
	KEY_SKNP   = Opcode(0xa1)
	MISC_LD_DT = Opcode(0x07) // LD Vx, DT
	MISC_LD_K  = Opcode(0x0a) // LD Vx, K
	MISC_DT    = Opcode(0x15) // LD DT, Vx
	MISC_ST    = Opcode(0x18) // LD ST, Vx
	MISC_ADD_I = Opcode(0x1e) // ADD I, Vx
	MISC_F     = Opcode(0x29) // LD F, Vx
	MISC_B     = Opcode(0x33) // LD B, Vx
	MISC_STORE = Opcode(0x55) // LD [I], Vx
	MISC_LOAD  = Opcode(0x65) // LD Vx, [I]
)

// MakeX places a register index in the x field, bits 8-11.
func MakeX(x uint8) Opcode {
	return Opcode(x&0xf) << 8
}

// MakeY places a register index in the y field, bits 4-7.
func MakeY(y uint8) Opcode {
	return Opcode(y&0xf) << 4
}

// MakeCodeXY creates an op x y n instruction.
func MakeCodeXY(op Opcode, x, y uint8, n Opcode) Opcode {
	return op | MakeX(x) | MakeY(y) | (n & 0xf)
}

// MakeCodeXKK creates an op x kk instruction.
func MakeCodeXKK(op Opcode, x uint8, kk uint16) Opcode {
	return op | MakeX(x) | Opcode(kk&0xff)
}

// MakeCodeNNN creates an op nnn instruction.
func MakeCodeNNN(op Opcode, nnn uint16) Opcode {
	return op | Opcode(nnn&0xfff)
}

// Class returns the high nibble template of the opcode.
func (op Opcode) Class() Opcode {
	return op & 0xf000
}

// Bytes returns the opcode as it is stored, high byte first.
func (op Opcode) Bytes() (data [2]byte) {
	binary.BigEndian.PutUint16(data[:], uint16(op))
	return
}

func (op Opcode) String() string {
	return fmt.Sprintf("0x%04X", uint16(op))
}
