package asm

// Special is a non general-purpose operand of LD and ADD.
type Special int

const (
	SPECIAL_NONE     = Special(0) // none
	SPECIAL_INDIRECT = Special(1) // [I]
	SPECIAL_ST       = Special(2) // ST
	SPECIAL_DT       = Special(3) // DT
	SPECIAL_I        = Special(4) // I
	SPECIAL_F        = Special(5) // F
	SPECIAL_B        = Special(6) // B
	SPECIAL_K        = Special(7) // K
)

// specialMap maps special operand names to their discriminant.
var specialMap = map[string]Special{
	"[I]": SPECIAL_INDIRECT,
	"ST":  SPECIAL_ST,
	"DT":  SPECIAL_DT,
	"I":   SPECIAL_I,
	"F":   SPECIAL_F,
	"B":   SPECIAL_B,
	"K":   SPECIAL_K,
}

func (sp Special) String() string {
	for name, value := range specialMap {
		if value == sp {
			return name
		}
	}
	return "none"
}

// Register is a decoded register operand: a general register V0-VF, or a
// special operand. Exactly one of the two is set.
type Register struct {
	ID      uint8   // General register index, valid when Special is SPECIAL_NONE.
	Special Special // Special operand, or SPECIAL_NONE.
}

// IsGeneral returns true for V0 through VF.
func (reg Register) IsGeneral() bool {
	return reg.Special == SPECIAL_NONE
}

func (reg Register) String() string {
	if reg.IsGeneral() {
		return f("V%X", reg.ID)
	}
	return reg.Special.String()
}

// hexDigit decodes an uppercase hexadecimal digit.
func hexDigit(c byte) (value uint8, ok bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// registerShaped returns true if word can only be meant as a general register.
func registerShaped(word string) bool {
	return len(word) > 0 && word[0] == 'V'
}

// GeneralRegister decodes 'Vx' into the register index x.
func GeneralRegister(word string) (id uint8, err error) {
	if word == "V" {
		err = operandError(word, ErrMissingRegister)
		return
	}

	if len(word) != 2 || word[0] != 'V' {
		err = operandError(word, ErrUnknownRegister)
		return
	}

	id, ok := hexDigit(word[1])
	if !ok {
		err = operandError(word, ErrUnknownRegister)
		return
	}

	return
}

// SpecialRegister decodes one of I, [I], DT, ST, F, B or K.
func SpecialRegister(word string) (sp Special, err error) {
	sp, ok := specialMap[word]
	if !ok {
		err = operandError(word, ErrUnknownRegister)
		return
	}

	return
}

// DecodeRegister decodes word as a general register, and failing that as a
// special operand.
func DecodeRegister(word string) (reg Register, err error) {
	reg.ID, err = GeneralRegister(word)
	if err == nil || registerShaped(word) {
		return
	}

	reg.Special, err = SpecialRegister(word)
	return
}
