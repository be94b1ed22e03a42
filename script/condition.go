package script

import (
	"github.com/libsv/go-bt/v2/bscript"

	"github.com/josephnicholas/VerusCoin/errors"
	"github.com/josephnicholas/VerusCoin/keyio"
)

// Pay-to-condition parameter versions. Payload dispatch only happens at
// CondVersionV2 or above.
const (
	CondVersionV1 = 1
	CondVersionV2 = 2
	CondVersionV3 = 3
)

// CondParams is the decoded parameter block of a pay-to-condition output:
// an m-of-n condition over destination identifiers plus the versioned,
// evaluation-code-tagged payload blobs consumed by the typed-payload codec.
type CondParams struct {
	Version      uint8
	EvalCode     uint8
	M            uint8
	N            uint8
	Destinations []keyio.ID
	Data         [][]byte
}

// IsValid reports whether the parameter block is structurally sound.
func (p *CondParams) IsValid() bool {
	if p == nil {
		return false
	}
	if p.Version < CondVersionV1 || p.Version > CondVersionV3 {
		return false
	}
	return int(p.N) == len(p.Destinations) && p.M <= p.N
}

// IsPayToCondition reports whether the script is a pay-to-condition output
// and returns its decoded parameters. The expected shape is a single params
// push followed by OP_CHECKCRYPTOCONDITION; anything else, including a
// malformed inner parameter script, is not a match.
func (s Script) IsPayToCondition() (*CondParams, bool) {
	pc := 0

	op, blob, next, ok := s.GetOp(pc)
	if !ok || op > bscript.OpPUSHDATA4 || len(blob) == 0 {
		return nil, false
	}
	pc = next

	op, _, next, ok = s.GetOp(pc)
	if !ok || op != OpCheckCryptoCondition || next != len(s) {
		return nil, false
	}

	params, err := parseCondParams(blob)
	if err != nil {
		return nil, false
	}

	return params, true
}

// parseCondParams decodes the pushed parameter blob. The blob is itself a
// push-only script: a 4-byte header push [version evalCode m n], n pushes of
// 20-byte destination identifiers, then any number of payload pushes.
func parseCondParams(blob []byte) (*CondParams, error) {
	inner := Script(blob)

	pc := 0
	op, header, next, ok := inner.GetOp(pc)
	if !ok || op > bscript.OpPUSHDATA4 || len(header) != 4 {
		return nil, errors.NewScriptInvalidError("condition params missing 4-byte header")
	}
	pc = next

	params := &CondParams{
		Version:  header[0],
		EvalCode: header[1],
		M:        header[2],
		N:        header[3],
	}

	for i := 0; i < int(params.N); i++ {
		op, data, next, ok := inner.GetOp(pc)
		if !ok || op > bscript.OpPUSHDATA4 || len(data) != keyio.IDLen {
			return nil, errors.NewScriptInvalidError("condition destination %d malformed", i)
		}

		id, err := keyio.NewID(data)
		if err != nil {
			return nil, err
		}
		params.Destinations = append(params.Destinations, id)
		pc = next
	}

	for pc < len(inner) {
		op, data, next, ok := inner.GetOp(pc)
		if !ok || op > bscript.OpPUSHDATA4 {
			return nil, errors.NewScriptInvalidError("condition payload push malformed")
		}
		params.Data = append(params.Data, data)
		pc = next
	}

	if !params.IsValid() {
		return nil, errors.NewScriptInvalidError("condition params invalid")
	}

	return params, nil
}

// PayToCondition assembles the output script for a parameter block. It is
// the encoding inverse of IsPayToCondition.
func PayToCondition(params *CondParams) (Script, error) {
	if !params.IsValid() {
		return nil, errors.NewScriptInvalidError("condition params invalid")
	}

	var inner []byte
	inner = appendPush(inner, []byte{params.Version, params.EvalCode, params.M, params.N})
	for _, id := range params.Destinations {
		inner = appendPush(inner, id.Bytes())
	}
	for _, data := range params.Data {
		inner = appendPush(inner, data)
	}

	var s []byte
	s = appendPush(s, inner)
	s = append(s, OpCheckCryptoCondition)

	return Script(s), nil
}

// appendPush appends a minimal push operation for data.
func appendPush(s, data []byte) []byte {
	switch {
	case len(data) < int(bscript.OpPUSHDATA1):
		s = append(s, byte(len(data)))
	case len(data) <= 0xff:
		s = append(s, bscript.OpPUSHDATA1, byte(len(data)))
	case len(data) <= 0xffff:
		s = append(s, bscript.OpPUSHDATA2, byte(len(data)), byte(len(data)>>8))
	default:
		s = append(s, bscript.OpPUSHDATA4, byte(len(data)), byte(len(data)>>8), byte(len(data)>>16), byte(len(data)>>24))
	}
	return append(s, data...)
}
