// Package script implements the output-script wire format: opcode scanning,
// human-readable disassembly, and extraction of the versioned payloads
// carried by pay-to-condition outputs. All inputs are treated as adversarial;
// nothing in this package panics on malformed bytes.
package script

import (
	"encoding/hex"

	"github.com/libsv/go-bt/v2/bscript"
)

// MaxScriptSize mirrors the consensus limit; anything larger is provably
// unspendable.
const MaxScriptSize = 10000

// Script is a raw output or input script.
type Script []byte

// NewFromHex parses a lowercase or uppercase hex string.
func NewFromHex(s string) (Script, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	return Script(b), nil
}

// NewFromBScript converts a go-bt script without copying.
func NewFromBScript(s *bscript.Script) Script {
	if s == nil {
		return nil
	}
	return Script(*s)
}

func (s Script) String() string {
	return hex.EncodeToString(s)
}

// GetOp scans one operation starting at pc. For push operations data holds
// the pushed payload (possibly empty). ok is false when the script is
// truncated mid-operation; pc is then undefined.
func (s Script) GetOp(pc int) (op byte, data []byte, next int, ok bool) {
	if pc < 0 || pc >= len(s) {
		return 0, nil, pc, false
	}

	op = s[pc]
	pc++

	if op > bscript.OpPUSHDATA4 {
		return op, nil, pc, true
	}

	var size int
	switch op {
	case bscript.OpPUSHDATA1:
		if pc+1 > len(s) {
			return op, nil, pc, false
		}
		size = int(s[pc])
		pc++
	case bscript.OpPUSHDATA2:
		if pc+2 > len(s) {
			return op, nil, pc, false
		}
		size = int(s[pc]) | int(s[pc+1])<<8
		pc += 2
	case bscript.OpPUSHDATA4:
		if pc+4 > len(s) {
			return op, nil, pc, false
		}
		size = int(s[pc]) | int(s[pc+1])<<8 | int(s[pc+2])<<16 | int(s[pc+3])<<24
		if size < 0 {
			return op, nil, pc, false
		}
		pc += 4
	default:
		size = int(op)
	}

	if pc+size > len(s) {
		return op, nil, pc, false
	}

	return op, s[pc : pc+size], pc + size, true
}

// IsUnspendable reports whether the script provably cannot be spent: an
// OP_RETURN data carrier or a script beyond the consensus size limit.
func (s Script) IsUnspendable() bool {
	return (len(s) > 0 && s[0] == bscript.OpRETURN) || len(s) > MaxScriptSize
}

// isPushOnly reports whether every operation in the script is a data push.
func (s Script) isPushOnly() bool {
	pc := 0
	for pc < len(s) {
		op, _, next, ok := s.GetOp(pc)
		if !ok || op > bscript.Op16 {
			return false
		}
		pc = next
	}
	return true
}
