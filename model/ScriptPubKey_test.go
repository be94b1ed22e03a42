package model

import (
	"encoding/json"
	"testing"

	"github.com/libsv/go-bt/v2/bscript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephnicholas/VerusCoin/keyio"
	"github.com/josephnicholas/VerusCoin/script"
)

func condScript(t *testing.T, evalCode uint8, payload []byte) script.Script {
	t.Helper()

	params := &script.CondParams{
		Version:      script.CondVersionV2,
		EvalCode:     evalCode,
		M:            1,
		N:            1,
		Destinations: []keyio.ID{cvmTestID(0x77)},
	}
	if payload != nil {
		params.Data = [][]byte{payload}
	}

	s, err := script.PayToCondition(params)
	require.NoError(t, err)
	return s
}

func TestScriptPubKeyToJSONPubKeyHash(t *testing.T) {
	s := script.Script{bscript.OpDUP, bscript.OpHASH160, 20}
	s = append(s, cvmTestID(0x11).Bytes()...)
	s = append(s, bscript.OpEQUALVERIFY, bscript.OpCHECKSIG)

	got := ScriptPubKeyToJSON(s, true, true)
	assert.Equal(t, script.TypePubKeyHash, got.Type)
	assert.Equal(t, 1, got.ReqSigs)
	require.Len(t, got.Addresses, 1)
	assert.Equal(t, "R", got.Addresses[0][:1])
	assert.Contains(t, got.Asm, "OP_DUP OP_HASH160")
	assert.Equal(t, s.String(), got.Hex)
	assert.Nil(t, got.ReserveOutput)
}

func TestScriptPubKeyToJSONOmitsAsmAndHex(t *testing.T) {
	s := script.Script{bscript.OpDUP, bscript.OpHASH160, 20}
	s = append(s, cvmTestID(0x11).Bytes()...)
	s = append(s, bscript.OpEQUALVERIFY, bscript.OpCHECKSIG)

	got := ScriptPubKeyToJSON(s, false, false)
	assert.Empty(t, got.Asm)
	assert.Empty(t, got.Hex)
}

func TestScriptPubKeyToJSONReserveOutput(t *testing.T) {
	out := &TokenOutput{Version: 1, CurrencyID: cvmTestID(0x11), Value: SatoshisPerCoin}
	s := condScript(t, EvalReserveOutput, out.Bytes())

	got := ScriptPubKeyToJSON(s, true, true)
	assert.Equal(t, script.TypeCryptoCondition, got.Type)
	assert.Equal(t, 1, got.ReqSigs)
	require.Len(t, got.Addresses, 1)
	assert.Equal(t, keyio.EncodeID(cvmTestID(0x77)), got.Addresses[0])

	var decoded TokenOutputJSON
	require.NoError(t, json.Unmarshal(got.ReserveOutput, &decoded))
	assert.Equal(t, keyio.EncodeID(cvmTestID(0x11)), decoded.CurrencyID)
	assert.Equal(t, Amount(SatoshisPerCoin), decoded.Value)
}

func TestScriptPubKeyToJSONInvalidMarker(t *testing.T) {
	// missing payload
	s := condScript(t, EvalReserveOutput, nil)
	got := ScriptPubKeyToJSON(s, false, false)
	assert.Equal(t, string(jsonInvalid), string(got.ReserveOutput))

	// undecodable payload
	s = condScript(t, EvalReserveOutput, []byte{0x01})
	got = ScriptPubKeyToJSON(s, false, false)
	assert.Equal(t, string(jsonInvalid), string(got.ReserveOutput))

	// decodable payload failing its validity check
	bad := &TokenOutput{Version: 0, CurrencyID: cvmTestID(0x11), Value: 1}
	s = condScript(t, EvalReserveOutput, bad.Bytes())
	got = ScriptPubKeyToJSON(s, false, false)
	assert.Equal(t, string(jsonInvalid), string(got.ReserveOutput))
}

func TestScriptPubKeyToJSONEmptyMarkerKinds(t *testing.T) {
	tests := []struct {
		evalCode uint8
		field    func(ScriptPubKeyJSON) json.RawMessage
	}{
		{EvalIdentityRevoke, func(j ScriptPubKeyJSON) json.RawMessage { return j.IdentityRevoke }},
		{EvalIdentityRecover, func(j ScriptPubKeyJSON) json.RawMessage { return j.IdentityRecover }},
		{EvalIdentityCommitment, func(j ScriptPubKeyJSON) json.RawMessage { return j.IdentityCommitment }},
		{EvalIdentityReservation, func(j ScriptPubKeyJSON) json.RawMessage { return j.IdentityReservation }},
		{EvalStakeGuard, func(j ScriptPubKeyJSON) json.RawMessage { return j.StakeGuard }},
	}

	for _, tt := range tests {
		s := condScript(t, tt.evalCode, []byte{0x01, 0x02})
		got := ScriptPubKeyToJSON(s, false, false)
		assert.Equal(t, string(jsonEmpty), string(tt.field(got)), "eval code %#x", tt.evalCode)
	}
}

func TestScriptPubKeyToJSONUnknownEvalCode(t *testing.T) {
	s := condScript(t, 0x7f, nil)

	got := ScriptPubKeyToJSON(s, false, false)
	assert.Equal(t, string(jsonEmpty), string(got.Unknown))
}

func TestScriptPubKeyToJSONVersionGate(t *testing.T) {
	out := &TokenOutput{Version: 1, CurrencyID: cvmTestID(0x11), Value: 1}

	params := &script.CondParams{
		Version:      script.CondVersionV1,
		EvalCode:     EvalReserveOutput,
		M:            1,
		N:            1,
		Destinations: []keyio.ID{cvmTestID(0x77)},
		Data:         [][]byte{out.Bytes()},
	}

	s, err := script.PayToCondition(params)
	require.NoError(t, err)

	got := ScriptPubKeyToJSON(s, false, false)
	assert.Equal(t, script.TypeCryptoCondition, got.Type)
	assert.Nil(t, got.ReserveOutput)
	assert.Nil(t, got.Unknown)
}

func TestScriptPubKeyToJSONNotarization(t *testing.T) {
	n := newTestNotarization()
	s := condScript(t, EvalAcceptedNotarization, n.Bytes())

	got := ScriptPubKeyToJSON(s, false, false)

	var decoded NotarizationJSON
	require.NoError(t, json.Unmarshal(got.Notarization, &decoded))
	assert.Equal(t, n.SystemID.Hex(), decoded.ChainID)
}

func TestScriptPubKeyToJSONIdentityPrimary(t *testing.T) {
	id := newTestIdentity()
	s := condScript(t, EvalIdentityPrimary, id.Bytes())

	got := ScriptPubKeyToJSON(s, false, false)

	var decoded IdentityJSON
	require.NoError(t, json.Unmarshal(got.IdentityPrimary, &decoded))
	assert.Equal(t, "alice", decoded.Name)
	assert.Equal(t, keyio.EncodeID(id.GetID()), decoded.IdentityAddress)
}

func TestScriptPubKeyToJSONNullData(t *testing.T) {
	s := script.Script{bscript.OpRETURN, 0x02, 0xaa, 0xbb}

	got := ScriptPubKeyToJSON(s, false, true)
	assert.Equal(t, script.TypeNullData, got.Type)
	assert.Zero(t, got.ReqSigs)
	assert.Empty(t, got.Addresses)
}
