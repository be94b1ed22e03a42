package model

import (
	"testing"

	"github.com/libsv/go-bt/v2"
	"github.com/libsv/go-p2p/chaincfg/chainhash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBlock(t *testing.T) *Block {
	t.Helper()

	prev, err := chainhash.NewHashFromStr("000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f")
	require.NoError(t, err)

	coinbase, err := bt.NewTxFromString(genesisCoinbaseHex)
	require.NoError(t, err)

	merkle := coinbase.TxIDChainHash()
	merkleRoot, err := chainhash.NewHash(merkle.CloneBytes())
	require.NoError(t, err)

	return &Block{
		Header: &BlockHeader{
			Version:        1,
			HashPrevBlock:  prev,
			HashMerkleRoot: merkleRoot,
			Timestamp:      1231469665,
			Bits:           []byte{0x1d, 0x00, 0xff, 0xff},
			Nonce:          2573394689,
		},
		Txs: []*bt.Tx{coinbase},
	}
}

func TestBlockHeaderBytesRoundTrip(t *testing.T) {
	h := newTestBlock(t).Header

	b := h.Bytes()
	require.Len(t, b, blockHeaderLen)

	decoded, err := NewBlockHeaderFromBytes(b)
	require.NoError(t, err)
	assert.Equal(t, h, decoded)
	assert.Equal(t, h.Hash().String(), decoded.Hash().String())
}

func TestNewBlockHeaderFromBytesWrongLength(t *testing.T) {
	_, err := NewBlockHeaderFromBytes(make([]byte, blockHeaderLen-1))
	require.Error(t, err)

	_, err = NewBlockHeaderFromBytes(make([]byte, blockHeaderLen+1))
	require.Error(t, err)
}

func TestBlockBytesRoundTrip(t *testing.T) {
	block := newTestBlock(t)

	decoded, err := NewBlockFromBytes(block.Bytes())
	require.NoError(t, err)
	assert.Equal(t, block.Header, decoded.Header)
	require.Len(t, decoded.Txs, 1)
	assert.Equal(t, block.Txs[0].String(), decoded.Txs[0].String())
	assert.Equal(t, block.Hash().String(), decoded.Hash().String())
}

func TestNewBlockFromStringRoundTrip(t *testing.T) {
	block := newTestBlock(t)
	blockHex := EncodeHexBlock(block)

	decoded, err := NewBlockFromString(blockHex)
	require.NoError(t, err)
	assert.Equal(t, blockHex, EncodeHexBlock(decoded))
}

func TestNewBlockFromBytesTooShort(t *testing.T) {
	_, err := NewBlockFromBytes(make([]byte, blockHeaderLen-1))
	require.Error(t, err)

	_, err = NewBlockFromString("zz")
	require.Error(t, err)
}

func TestNewBlockFromBytesTruncatedTx(t *testing.T) {
	b := newTestBlock(t).Bytes()

	_, err := NewBlockFromBytes(b[:len(b)-10])
	require.Error(t, err)
}

func TestBlockToJSON(t *testing.T) {
	block := newTestBlock(t)

	got := BlockToJSON(block)
	assert.Equal(t, block.Hash().String(), got.Hash)
	assert.Equal(t, uint32(1), got.Version)
	assert.Equal(t, "000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f", got.PreviousBlockHash)
	assert.Equal(t, block.Txs[0].TxIDChainHash().String(), got.MerkleRoot)
	assert.Equal(t, uint32(1231469665), got.Time)
	assert.Equal(t, "1d00ffff", got.Bits)

	// every transaction carries the containing block's hash
	require.Len(t, got.Tx, 1)
	assert.Equal(t, block.Hash().String(), got.Tx[0].BlockHash)
	assert.Equal(t, block.Txs[0].TxIDChainHash().String(), got.Tx[0].Txid)
}

func TestBlockHashMatchesHeaderHash(t *testing.T) {
	block := newTestBlock(t)

	assert.Equal(t, block.Header.Hash().String(), block.Hash().String())
	assert.Equal(t, chainhash.DoubleHashH(block.Header.Bytes()).String(), block.Hash().String())
}
