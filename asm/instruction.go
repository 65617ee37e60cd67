package asm

import (
	"errors"
	"fmt"
)

// errNotV0 rejects JP with an offset register other than V0.
var errNotV0 = fmt.Errorf("%w: %v", ErrMissingOperand, f("register must be V0"))

// needOperands checks that at least count operands are present.
func needOperands(operands []string, count int) (err error) {
	if len(operands) < count {
		err = ErrMissingOperand
	}
	return
}

// registerOrImmediate decodes an operand that is either a general register
// or an immediate of the given width. When both decodes fail the immediate
// error is returned, except for a bare 'V'.
func registerOrImmediate(word string, width Width) (id uint8, imm uint16, isReg bool, err error) {
	id, err = GeneralRegister(word)
	if err == nil {
		isReg = true
		return
	}
	if errors.Is(err, ErrMissingRegister) {
		return
	}

	imm, err = DecodeImmediate(word, width)
	return
}

func fixedEncoder(op Opcode) encoderFunc {
	return func(operands []string) (Opcode, error) {
		return op, nil
	}
}

// addressEncoder encodes 'op nnn'.
func addressEncoder(op Opcode) encoderFunc {
	return func(operands []string) (code Opcode, err error) {
		if err = needOperands(operands, 1); err != nil {
			return
		}
		nnn, err := DecodeImmediate(operands[0], WIDTH_ADDRESS)
		if err != nil {
			return
		}
		code = MakeCodeNNN(op, nnn)
		return
	}
}

var encodeSys = addressEncoder(OP_SYS)

// encodeJp selects 'JP V0, nnn' or 'JP nnn' by operand count.
func encodeJp(operands []string) (code Opcode, err error) {
	if len(operands) < 2 {
		return addressEncoder(OP_JP)(operands)
	}

	x, err := GeneralRegister(operands[0])
	if err != nil {
		return
	}
	if x != 0 {
		err = operandError(operands[0], errNotV0)
		return
	}

	nnn, err := DecodeImmediate(operands[1], WIDTH_ADDRESS)
	if err != nil {
		return
	}

	code = MakeCodeNNN(OP_JPV0, nnn)
	return
}

// compareEncoder encodes SE and SNE: 'Vx, kk' with opImm, 'Vx, Vy' with opReg.
func compareEncoder(opImm, opReg Opcode) encoderFunc {
	return func(operands []string) (code Opcode, err error) {
		if err = needOperands(operands, 2); err != nil {
			return
		}
		x, err := GeneralRegister(operands[0])
		if err != nil {
			return
		}
		y, kk, isReg, err := registerOrImmediate(operands[1], WIDTH_BYTE)
		if err != nil {
			return
		}
		if isReg {
			code = MakeCodeXY(opReg, x, y, 0)
		} else {
			code = MakeCodeXKK(opImm, x, kk)
		}
		return
	}
}

// aluEncoder encodes the 8xyN register to register group.
func aluEncoder(n Opcode) encoderFunc {
	return func(operands []string) (code Opcode, err error) {
		if err = needOperands(operands, 2); err != nil {
			return
		}
		x, err := GeneralRegister(operands[0])
		if err != nil {
			return
		}
		y, err := GeneralRegister(operands[1])
		if err != nil {
			return
		}
		code = MakeCodeXY(OP_ALU, x, y, n)
		return
	}
}

// keyEncoder encodes the Ex__ key skips.
func keyEncoder(low Opcode) encoderFunc {
	return func(operands []string) (code Opcode, err error) {
		if err = needOperands(operands, 1); err != nil {
			return
		}
		x, err := GeneralRegister(operands[0])
		if err != nil {
			return
		}
		code = OP_KEY | MakeX(x) | low
		return
	}
}

// encodeAdd encodes 'ADD Vx, Vy', 'ADD Vx, kk' and 'ADD I, Vx'.
func encodeAdd(operands []string) (code Opcode, err error) {
	if err = needOperands(operands, 2); err != nil {
		return
	}

	dst, err := DecodeRegister(operands[0])
	if err != nil {
		return
	}

	if !dst.IsGeneral() {
		if dst.Special != SPECIAL_I {
			err = operandError(operands[0], ErrInvalidOperand)
			return
		}
		var x uint8
		x, err = GeneralRegister(operands[1])
		if err != nil {
			return
		}
		code = OP_MISC | MakeX(x) | MISC_ADD_I
		return
	}

	y, kk, isReg, err := registerOrImmediate(operands[1], WIDTH_BYTE)
	if err != nil {
		return
	}
	if isReg {
		code = MakeCodeXY(OP_ALU, dst.ID, y, ALU_ADD)
	} else {
		code = MakeCodeXKK(OP_ADD, dst.ID, kk)
	}
	return
}

// encodeRnd encodes 'RND Vx, kk'.
func encodeRnd(operands []string) (code Opcode, err error) {
	if err = needOperands(operands, 2); err != nil {
		return
	}
	x, err := GeneralRegister(operands[0])
	if err != nil {
		return
	}
	kk, err := DecodeImmediate(operands[1], WIDTH_BYTE)
	if err != nil {
		return
	}
	code = MakeCodeXKK(OP_RND, x, kk)
	return
}

// encodeDrw encodes 'DRW Vx, Vy, n'.
func encodeDrw(operands []string) (code Opcode, err error) {
	if err = needOperands(operands, 3); err != nil {
		return
	}
	x, err := GeneralRegister(operands[0])
	if err != nil {
		return
	}
	y, err := GeneralRegister(operands[1])
	if err != nil {
		return
	}
	n, err := DecodeImmediate(operands[2], WIDTH_NIBBLE)
	if err != nil {
		return
	}
	code = MakeCodeXY(OP_DRW, x, y, Opcode(n))
	return
}

// ldFromMap maps the special source of 'LD Vx, <special>' to its Fx__ code.
var ldFromMap = map[Special]Opcode{
	SPECIAL_DT:       MISC_LD_DT,
	SPECIAL_K:        MISC_LD_K,
	SPECIAL_INDIRECT: MISC_LOAD,
}

// ldToMap maps the special target of 'LD <special>, Vx' to its Fx__ code.
var ldToMap = map[Special]Opcode{
	SPECIAL_DT:       MISC_DT,
	SPECIAL_ST:       MISC_ST,
	SPECIAL_F:        MISC_F,
	SPECIAL_B:        MISC_B,
	SPECIAL_INDIRECT: MISC_STORE,
}

// encodeLd resolves the target as a general register first, then as a
// special operand.
func encodeLd(operands []string) (code Opcode, err error) {
	if err = needOperands(operands, 2); err != nil {
		return
	}

	dst, err := DecodeRegister(operands[0])
	if err != nil {
		return
	}

	if dst.IsGeneral() {
		return encodeLdGeneral(dst.ID, operands[1])
	}

	return encodeLdSpecial(operands[0], dst.Special, operands[1])
}

// encodeLdGeneral encodes 'LD Vx, <source>'.
func encodeLdGeneral(x uint8, word string) (code Opcode, err error) {
	src, err := DecodeRegister(word)
	switch {
	case err == nil && src.IsGeneral():
		code = MakeCodeXY(OP_ALU, x, src.ID, ALU_LD)
		return
	case err == nil:
		low, ok := ldFromMap[src.Special]
		if !ok {
			err = operandError(word, ErrInvalidOperand)
			return
		}
		code = OP_MISC | MakeX(x) | low
		return
	case errors.Is(err, ErrMissingRegister):
		return
	}

	kk, err := DecodeImmediate(word, WIDTH_BYTE)
	if err != nil {
		return
	}
	code = MakeCodeXKK(OP_LD, x, kk)
	return
}

// encodeLdSpecial encodes 'LD I, nnn' and 'LD <special>, Vx'.
func encodeLdSpecial(target string, sp Special, word string) (code Opcode, err error) {
	if sp == SPECIAL_I {
		_, err = DecodeRegister(word)
		switch {
		case err == nil:
			err = operandError(word, ErrInvalidOperand)
			return
		case errors.Is(err, ErrMissingRegister):
			return
		}

		var nnn uint16
		nnn, err = DecodeImmediate(word, WIDTH_ADDRESS)
		if err != nil {
			return
		}
		code = MakeCodeNNN(OP_LDI, nnn)
		return
	}

	low, ok := ldToMap[sp]
	if !ok {
		err = operandError(target, ErrInvalidOperand)
		return
	}

	x, err := GeneralRegister(word)
	if err != nil {
		err = operandError(word, ErrInvalidOperand)
		return
	}

	code = OP_MISC | MakeX(x) | low
	return
}
