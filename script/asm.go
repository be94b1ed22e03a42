package script

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/libsv/go-bt/v2/bscript"
)

// ToASM renders the script as a space-separated token stream.
//
// Small constants print as decimal, named opcodes print their full OP_
// mnemonic, pushes of at most 4 bytes print as their decoded integer and
// longer pushes print as hex. When attemptSighashDecode is set, pushed data
// that passes strict signature encoding has its trailing sighash byte mapped
// through the mnemonic table and appended bracketed after the hex. Decoding
// is never attempted on a provably unspendable script, which would otherwise
// misread burned data as signatures.
//
// A truncated operation terminates the stream with an "[error]" token; the
// caller never sees a fault.
func (s Script) ToASM(attemptSighashDecode bool) string {
	var b strings.Builder

	pc := 0
	for pc < len(s) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}

		op, data, next, ok := s.GetOp(pc)
		if !ok {
			b.WriteString("[error]")
			return b.String()
		}
		pc = next

		switch {
		case op == bscript.Op0:
			b.WriteString("0")

		case op == bscript.Op1NEGATE || (op >= bscript.Op1 && op <= bscript.Op16):
			b.WriteString(strconv.Itoa(int(op) - int(bscript.Op1NEGATE) - 1))

		case op <= bscript.OpPUSHDATA4:
			if len(data) <= 4 {
				b.WriteString(strconv.FormatInt(scriptNum(data), 10))
				continue
			}

			if attemptSighashDecode && !s.IsUnspendable() {
				if name, sigOK := decodeSigHashSuffix(data); sigOK {
					b.WriteString(hex.EncodeToString(data[:len(data)-1]))
					b.WriteString("[" + name + "]")
					continue
				}
			}
			b.WriteString(hex.EncodeToString(data))

		default:
			b.WriteString(opName(op))
		}
	}

	return b.String()
}

// decodeSigHashSuffix reports the sighash mnemonic for data that is shaped
// like a strictly-encoded signature.
func decodeSigHashSuffix(data []byte) (string, bool) {
	if !checkSignatureEncoding(data) {
		return "", false
	}
	name, ok := sigHashNames[data[len(data)-1]]
	return name, ok
}

// Format renders the script for debugging: named operations print like ToASM
// while push operations print their opcode bytes and payload as 0x-prefixed
// hex pairs. A truncated tail prints as one hex token.
func (s Script) Format() string {
	var tokens []string

	pc := 0
	for pc < len(s) {
		start := pc

		op, data, next, ok := s.GetOp(pc)
		if !ok {
			tokens = append(tokens, "0x"+hex.EncodeToString(s[start:]))
			break
		}
		pc = next

		switch {
		case op == bscript.Op0:
			tokens = append(tokens, "0")
		case op == bscript.Op1NEGATE || (op >= bscript.Op1 && op <= bscript.Op16):
			tokens = append(tokens, strconv.Itoa(int(op)-int(bscript.Op1NEGATE)-1))
		case op >= bscript.OpNOP && op <= bscript.OpCHECKMULTISIGVERIFY && strings.HasPrefix(opName(op), "OP_"):
			tokens = append(tokens, strings.TrimPrefix(opName(op), "OP_"))
		case len(data) > 0:
			opBytes := s[start : next-len(data)]
			tokens = append(tokens, "0x"+hex.EncodeToString(opBytes), "0x"+hex.EncodeToString(data))
		default:
			tokens = append(tokens, "0x"+hex.EncodeToString(s[start:next]))
		}
	}

	return strings.Join(tokens, " ")
}
