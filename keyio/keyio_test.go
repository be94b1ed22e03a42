package keyio

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	var id ID
	for i := range id {
		id[i] = byte(i + 1)
	}

	tests := []struct {
		name string
		typ  DestinationType
	}{
		{"pubkeyhash", DestPubKeyHash},
		{"scripthash", DestScriptHash},
		{"identity", DestID},
		{"quantum", DestQuantum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := EncodeDestination(Destination{Type: tt.typ, Data: id.Bytes()})
			require.NotEmpty(t, encoded)

			decoded, err := DecodeDestination(encoded)
			require.NoError(t, err)
			assert.Equal(t, tt.typ, decoded.Type)
			assert.Equal(t, id.Bytes(), decoded.Data)
		})
	}
}

func TestAddressPrefixes(t *testing.T) {
	var id ID

	assert.Equal(t, "R", EncodeDestination(Destination{Type: DestPubKeyHash, Data: id.Bytes()})[:1])
	assert.Equal(t, "b", EncodeDestination(Destination{Type: DestScriptHash, Data: id.Bytes()})[:1])
	assert.Equal(t, "i", EncodeID(id)[:1])
}

func TestDecodeDestinationChecksumMismatch(t *testing.T) {
	var id ID
	encoded := EncodeID(id)

	// flip a character in the middle of the encoding
	corrupted := []byte(encoded)
	if corrupted[10] == '2' {
		corrupted[10] = '3'
	} else {
		corrupted[10] = '2'
	}

	_, err := DecodeDestination(string(corrupted))
	require.Error(t, err)
}

func TestDecodeDestinationMalformed(t *testing.T) {
	_, err := DecodeDestination("")
	require.Error(t, err)

	_, err = DecodeDestination("0OIl") // not base58
	require.Error(t, err)

	_, err = DecodeDestination("2g") // too short for version + checksum
	require.Error(t, err)
}

func TestDecodeIDRejectsNull(t *testing.T) {
	encoded := EncodeID(NilID)

	_, err := DecodeID(encoded)
	require.Error(t, err)
}

func TestEncodeDestinationRawFallback(t *testing.T) {
	data := []byte{0xde, 0xad, 0xbe, 0xef}
	assert.Equal(t, "deadbeef", EncodeDestination(Destination{Type: DestRaw, Data: data}))
}

func TestNewID(t *testing.T) {
	_, err := NewID(make([]byte, 19))
	require.Error(t, err)

	id, err := NewID(make([]byte, IDLen))
	require.NoError(t, err)
	assert.True(t, id.IsNull())
}

func TestIdentityIDDeterministic(t *testing.T) {
	a := IdentityID("VRSC", NilID)
	b := IdentityID("vrsc", NilID)
	c := IdentityID("VRSC", NilID)

	assert.Equal(t, a, b, "identity derivation is case-insensitive")
	assert.Equal(t, a, c)
	assert.False(t, a.IsNull())

	parent := IdentityID("VRSC", NilID)
	child := IdentityID("alice", parent)
	assert.NotEqual(t, a, child)
	assert.NotEqual(t, IdentityID("alice", NilID), child)
}

func TestHash160(t *testing.T) {
	// ripemd160(sha256("")) is a well-known vector
	got := Hash160(nil)
	assert.Equal(t, "b472a266d0bd89c13706a4132ccfb16f7c3b9fcb", hex.EncodeToString(got[:]))
}

func TestIDHex(t *testing.T) {
	var id ID
	id[0] = 0xab
	id[19] = 0xcd

	assert.Equal(t, "ab000000000000000000000000000000000000cd", id.Hex())
}
