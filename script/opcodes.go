package script

import "github.com/libsv/go-bt/v2/bscript"

// OpCheckCryptoCondition guards every pay-to-condition output.
const OpCheckCryptoCondition = 0xcc

// opcodeNames maps every defined opcode byte to its canonical mnemonic.
// Push opcodes (0x01-0x4b) are rendered from their payload and carry no name.
var opcodeNames = map[byte]string{
	bscript.Op0:         "OP_0",
	bscript.OpPUSHDATA1: "OP_PUSHDATA1",
	bscript.OpPUSHDATA2: "OP_PUSHDATA2",
	bscript.OpPUSHDATA4: "OP_PUSHDATA4",
	bscript.Op1NEGATE:   "OP_1NEGATE",
	0x50:                "OP_RESERVED",
	bscript.Op1:         "OP_1",
	bscript.Op2:         "OP_2",
	bscript.Op3:         "OP_3",
	bscript.Op4:         "OP_4",
	bscript.Op5:         "OP_5",
	bscript.Op6:         "OP_6",
	bscript.Op7:         "OP_7",
	bscript.Op8:         "OP_8",
	bscript.Op9:         "OP_9",
	bscript.Op10:        "OP_10",
	bscript.Op11:        "OP_11",
	bscript.Op12:        "OP_12",
	bscript.Op13:        "OP_13",
	bscript.Op14:        "OP_14",
	bscript.Op15:        "OP_15",
	bscript.Op16:        "OP_16",

	bscript.OpNOP:      "OP_NOP",
	bscript.OpVER:      "OP_VER",
	bscript.OpIF:       "OP_IF",
	bscript.OpNOTIF:    "OP_NOTIF",
	bscript.OpVERIF:    "OP_VERIF",
	bscript.OpVERNOTIF: "OP_VERNOTIF",
	bscript.OpELSE:     "OP_ELSE",
	bscript.OpENDIF:    "OP_ENDIF",
	bscript.OpVERIFY:   "OP_VERIFY",
	bscript.OpRETURN:   "OP_RETURN",

	bscript.OpTOALTSTACK:   "OP_TOALTSTACK",
	bscript.OpFROMALTSTACK: "OP_FROMALTSTACK",
	bscript.Op2DROP:        "OP_2DROP",
	bscript.Op2DUP:         "OP_2DUP",
	bscript.Op3DUP:         "OP_3DUP",
	bscript.Op2OVER:        "OP_2OVER",
	bscript.Op2ROT:         "OP_2ROT",
	bscript.Op2SWAP:        "OP_2SWAP",
	bscript.OpIFDUP:        "OP_IFDUP",
	bscript.OpDEPTH:        "OP_DEPTH",
	bscript.OpDROP:         "OP_DROP",
	bscript.OpDUP:          "OP_DUP",
	bscript.OpNIP:          "OP_NIP",
	bscript.OpOVER:         "OP_OVER",
	bscript.OpPICK:         "OP_PICK",
	bscript.OpROLL:         "OP_ROLL",
	bscript.OpROT:          "OP_ROT",
	bscript.OpSWAP:         "OP_SWAP",
	bscript.OpTUCK:         "OP_TUCK",

	bscript.OpCAT:     "OP_CAT",
	bscript.OpSPLIT:   "OP_SPLIT",
	bscript.OpNUM2BIN: "OP_NUM2BIN",
	bscript.OpBIN2NUM: "OP_BIN2NUM",
	bscript.OpSIZE:    "OP_SIZE",

	bscript.OpINVERT:      "OP_INVERT",
	bscript.OpAND:         "OP_AND",
	bscript.OpOR:          "OP_OR",
	bscript.OpXOR:         "OP_XOR",
	bscript.OpEQUAL:       "OP_EQUAL",
	bscript.OpEQUALVERIFY: "OP_EQUALVERIFY",
	0x89:                  "OP_RESERVED1",
	0x8a:                  "OP_RESERVED2",

	bscript.Op1ADD:      "OP_1ADD",
	bscript.Op1SUB:      "OP_1SUB",
	bscript.Op2MUL:      "OP_2MUL",
	bscript.Op2DIV:      "OP_2DIV",
	bscript.OpNEGATE:    "OP_NEGATE",
	bscript.OpABS:       "OP_ABS",
	bscript.OpNOT:       "OP_NOT",
	bscript.Op0NOTEQUAL: "OP_0NOTEQUAL",

	bscript.OpADD:    "OP_ADD",
	bscript.OpSUB:    "OP_SUB",
	bscript.OpMUL:    "OP_MUL",
	bscript.OpDIV:    "OP_DIV",
	bscript.OpMOD:    "OP_MOD",
	bscript.OpLSHIFT: "OP_LSHIFT",
	bscript.OpRSHIFT: "OP_RSHIFT",

	bscript.OpBOOLAND:            "OP_BOOLAND",
	bscript.OpBOOLOR:             "OP_BOOLOR",
	bscript.OpNUMEQUAL:           "OP_NUMEQUAL",
	bscript.OpNUMEQUALVERIFY:     "OP_NUMEQUALVERIFY",
	bscript.OpNUMNOTEQUAL:        "OP_NUMNOTEQUAL",
	bscript.OpLESSTHAN:           "OP_LESSTHAN",
	bscript.OpGREATERTHAN:        "OP_GREATERTHAN",
	bscript.OpLESSTHANOREQUAL:    "OP_LESSTHANOREQUAL",
	bscript.OpGREATERTHANOREQUAL: "OP_GREATERTHANOREQUAL",
	bscript.OpMIN:                "OP_MIN",
	bscript.OpMAX:                "OP_MAX",
	bscript.OpWITHIN:             "OP_WITHIN",

	bscript.OpRIPEMD160:           "OP_RIPEMD160",
	bscript.OpSHA1:                "OP_SHA1",
	bscript.OpSHA256:              "OP_SHA256",
	bscript.OpHASH160:             "OP_HASH160",
	bscript.OpHASH256:             "OP_HASH256",
	bscript.OpCODESEPARATOR:       "OP_CODESEPARATOR",
	bscript.OpCHECKSIG:            "OP_CHECKSIG",
	bscript.OpCHECKSIGVERIFY:      "OP_CHECKSIGVERIFY",
	bscript.OpCHECKMULTISIG:       "OP_CHECKMULTISIG",
	bscript.OpCHECKMULTISIGVERIFY: "OP_CHECKMULTISIGVERIFY",

	bscript.OpNOP1:                "OP_NOP1",
	bscript.OpCHECKLOCKTIMEVERIFY: "OP_CHECKLOCKTIMEVERIFY",
	bscript.OpCHECKSEQUENCEVERIFY: "OP_CHECKSEQUENCEVERIFY",
	bscript.OpNOP4:                "OP_NOP4",
	bscript.OpNOP5:                "OP_NOP5",
	bscript.OpNOP6:                "OP_NOP6",
	bscript.OpNOP7:                "OP_NOP7",
	bscript.OpNOP8:                "OP_NOP8",
	bscript.OpNOP9:                "OP_NOP9",
	bscript.OpNOP10:               "OP_NOP10",

	OpCheckCryptoCondition: "OP_CHECKCRYPTOCONDITION",
}

// opName returns the mnemonic for an opcode, or OP_UNKNOWN when the byte is
// not a defined operation.
func opName(op byte) string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return "OP_UNKNOWN"
}
