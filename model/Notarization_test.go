package model

import (
	"encoding/json"
	"testing"

	"github.com/libsv/go-p2p/chaincfg/chainhash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephnicholas/VerusCoin/keyio"
)

func newTestNotarization() *Notarization {
	var mmr, pre chainhash.Hash
	mmr[0] = 0xaa
	pre[0] = 0xbb

	return &Notarization{
		Version:             NotarizationVersionCurrent,
		SystemID:            cvmTestID(0x11),
		NotaryDest:          keyio.Destination{Type: keyio.DestPubKeyHash, Data: cvmTestID(0x22).Bytes()},
		NotarizationHeight:  1000,
		MMRRoot:             mmr,
		NotarizationPreHash: pre,
		CompactPower:        powerHash(1000, 250),
		CurrencyState:       newTestCoinbaseCurrencyState(),
		PrevHeight:          990,
		CrossHeight:         500,
		Nodes: []NodeData{
			{NetworkAddress: "203.0.113.10:27485", NodeIdentity: cvmTestID(0x33)},
		},
	}
}

// powerHash packs work into the low 128 bits and stake into the high 128
// bits, both little-endian.
func powerHash(work, stake uint64) chainhash.Hash {
	var h chainhash.Hash
	for i := 0; i < 8; i++ {
		h[i] = byte(work >> (8 * i))
		h[16+i] = byte(stake >> (8 * i))
	}
	return h
}

func TestNotarizationBytesRoundTrip(t *testing.T) {
	n := newTestNotarization()

	decoded, err := NewNotarizationFromBytes(n.Bytes())
	require.NoError(t, err)
	assert.Equal(t, n, decoded)
	assert.True(t, decoded.IsValid())
}

func TestNotarizationFromBytesTruncated(t *testing.T) {
	b := newTestNotarization().Bytes()

	for _, cut := range []int{1, 10, len(b) - 1} {
		_, err := NewNotarizationFromBytes(b[:cut])
		require.Error(t, err, "cut at %d", cut)
	}
}

func TestNotarizationIsValid(t *testing.T) {
	n := newTestNotarization()
	assert.True(t, n.IsValid())

	n.Version = 0
	assert.False(t, n.IsValid())

	n.Version = NotarizationVersionCurrent
	n.SystemID = keyio.NilID
	assert.False(t, n.IsValid())
}

func TestNotarizationWorkAndStake(t *testing.T) {
	n := newTestNotarization()
	n.CompactPower = powerHash(123456789, 987654321)

	assert.Equal(t, "123456789", n.Work())
	assert.Equal(t, "987654321", n.Stake())

	// a value wider than 64 bits
	var h chainhash.Hash
	h[15] = 0x01 // low half = 2^120
	h[31] = 0x80 // high half = 2^127
	n.CompactPower = h

	assert.Equal(t, "1329227995784915872903807060280344576", n.Work())
	assert.Equal(t, "170141183460469231731687303715884105728", n.Stake())
}

func TestNotarizationToJSON(t *testing.T) {
	n := newTestNotarization()

	got := n.ToJSON()
	assert.Equal(t, n.SystemID.Hex(), got.ChainID)
	assert.Equal(t, keyio.EncodeDestination(n.NotaryDest), got.NotaryAddress)
	assert.Equal(t, int64(1000), got.NotarizationHeight)
	assert.Equal(t, "1000", got.Work)
	assert.Equal(t, "250", got.Stake)
	assert.Equal(t, n.MMRRoot.String(), got.MMRRoot)
	require.Len(t, got.Nodes, 1)
	assert.Equal(t, "203.0.113.10:27485", got.Nodes[0].NetworkAddress)
	assert.Equal(t, keyio.EncodeID(cvmTestID(0x33)), got.Nodes[0].NodeIdentity)
}

func TestNotarizationToJSONEmptyNodes(t *testing.T) {
	n := newTestNotarization()
	n.Nodes = nil

	b, err := json.Marshal(n.ToJSON())
	require.NoError(t, err)
	assert.Contains(t, string(b), `"nodes":[]`)
}
