package asm

// encoderFunc encodes the operands following a mnemonic.
type encoderFunc func(operands []string) (Opcode, error)

// mnemonicMap maps mnemonics to their operand encoders.
var mnemonicMap = map[string]encoderFunc{
	"SYS":  encodeSys,
	"CLS":  fixedEncoder(OP_CLS),
	"RET":  fixedEncoder(OP_RET),
	"JP":   encodeJp,
	"CALL": addressEncoder(OP_CALL),
	"SE":   compareEncoder(OP_SE, OP_SER),
	"SNE":  compareEncoder(OP_SNE, OP_SNER),
	"LD":   encodeLd,
	"ADD":  encodeAdd,
	"OR":   aluEncoder(ALU_OR),
	"AND":  aluEncoder(ALU_AND),
	"XOR":  aluEncoder(ALU_XOR),
	"SUB":  aluEncoder(ALU_SUB),
	"SHR":  aluEncoder(ALU_SHR),
	"SUBN": aluEncoder(ALU_SUBN),
	"SHL":  aluEncoder(ALU_SHL),
	"RND":  encodeRnd,
	"DRW":  encodeDrw,
	"SKP":  keyEncoder(KEY_SKP),
	"SKNP": keyEncoder(KEY_SKNP),
}

// IsMnemonic returns true if word is a known instruction name.
func IsMnemonic(word string) bool {
	_, ok := mnemonicMap[word]
	return ok
}

// Encode encodes a tokenized line: a mnemonic followed by its operands.
func Encode(tokens []string) (op Opcode, err error) {
	if len(tokens) == 0 {
		err = ErrUnknownMnemonic
		return
	}

	encoder, ok := mnemonicMap[tokens[0]]
	if !ok {
		err = operandError(tokens[0], ErrUnknownMnemonic)
		return
	}

	return encoder(tokens[1:])
}

// EncodeLine tokenizes and encodes a single source line.
func EncodeLine(line string) (op Opcode, err error) {
	tokens, err := Tokenize(line)
	if err != nil {
		return
	}

	return Encode(tokens)
}
