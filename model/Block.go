package model

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"

	"github.com/libsv/go-bc"
	"github.com/libsv/go-bk/crypto"
	"github.com/libsv/go-bt/v2"
	"github.com/libsv/go-p2p/chaincfg/chainhash"
	"github.com/libsv/go-p2p/wire"

	"github.com/josephnicholas/VerusCoin/errors"
)

const blockHeaderLen = 80

type BlockHeader struct {
	// Version of the block.  This is not the same as the protocol version.
	Version uint32

	// Hash of the previous block header in the blockchain.
	HashPrevBlock *chainhash.Hash

	// Merkle tree reference to hash of all transactions for the block.
	HashMerkleRoot *chainhash.Hash

	// Time the block was created in unix time.
	Timestamp uint32

	// Difficulty target for the block.
	Bits []byte

	// Nonce used to generate the block.
	Nonce uint32
}

func NewBlockHeaderFromBytes(headerBytes []byte) (*BlockHeader, error) {
	if len(headerBytes) != blockHeaderLen {
		return nil, errors.NewInvalidArgumentError("block header should be %d bytes long, got %d", blockHeaderLen, len(headerBytes))
	}

	hashPrevBlock, err := chainhash.NewHash(headerBytes[4:36])
	if err != nil {
		return nil, errors.NewProcessingError("error creating previous block hash from bytes", err)
	}

	hashMerkleRoot, err := chainhash.NewHash(headerBytes[36:68])
	if err != nil {
		return nil, errors.NewProcessingError("error creating merkle root hash from bytes", err)
	}

	return &BlockHeader{
		Version:        binary.LittleEndian.Uint32(headerBytes[:4]),
		HashPrevBlock:  hashPrevBlock,
		HashMerkleRoot: hashMerkleRoot,
		Timestamp:      binary.LittleEndian.Uint32(headerBytes[68:72]),
		Bits:           bt.ReverseBytes(headerBytes[72:76]),
		Nonce:          binary.LittleEndian.Uint32(headerBytes[76:]),
	}, nil
}

func NewBlockHeaderFromString(headerHex string) (*BlockHeader, error) {
	headerBytes, err := hex.DecodeString(headerHex)
	if err != nil {
		return nil, errors.NewInvalidArgumentError("error decoding hex string to bytes", err)
	}

	return NewBlockHeaderFromBytes(headerBytes)
}

func (bh *BlockHeader) Hash() *chainhash.Hash {
	hash := chainhash.DoubleHashH(bh.Bytes())
	return &hash
}

func (bh *BlockHeader) Bytes() []byte {
	var headerBytes []byte
	headerBytes = append(headerBytes, bc.UInt32ToBytes(bh.Version)...)
	headerBytes = append(headerBytes, bh.HashPrevBlock.CloneBytes()...)
	headerBytes = append(headerBytes, bh.HashMerkleRoot.CloneBytes()...)
	headerBytes = append(headerBytes, bc.UInt32ToBytes(bh.Timestamp)...)
	headerBytes = append(headerBytes, bt.ReverseBytes(bh.Bits)...)
	headerBytes = append(headerBytes, bc.UInt32ToBytes(bh.Nonce)...)

	return headerBytes
}

// Block is a header plus its full transaction list, serialized as the
// 80-byte header, a varint transaction count and the raw transactions.
type Block struct {
	Header *BlockHeader
	Txs    []*bt.Tx
}

func NewBlockFromBytes(blockBytes []byte) (*Block, error) {
	if len(blockBytes) < blockHeaderLen {
		return nil, errors.NewInvalidArgumentError("block too short: %d bytes", len(blockBytes))
	}

	header, err := NewBlockHeaderFromBytes(blockBytes[:blockHeaderLen])
	if err != nil {
		return nil, err
	}

	r := bytes.NewReader(blockBytes[blockHeaderLen:])

	txCount, err := wire.ReadVarInt(r, 0)
	if err != nil {
		return nil, errors.NewProcessingError("error reading transaction count", err)
	}

	if txCount > maxVectorAllocation {
		return nil, errors.NewInvalidArgumentError("transaction count %d exceeds limit", txCount)
	}

	txs := make([]*bt.Tx, 0, txCount)

	for i := uint64(0); i < txCount; i++ {
		tx := &bt.Tx{}
		if _, err = tx.ReadFrom(r); err != nil {
			return nil, errors.NewTxInvalidError("error reading transaction %d", i, err)
		}

		txs = append(txs, tx)
	}

	return &Block{Header: header, Txs: txs}, nil
}

func NewBlockFromString(blockHex string) (*Block, error) {
	blockBytes, err := hex.DecodeString(blockHex)
	if err != nil {
		return nil, errors.NewInvalidArgumentError("error decoding hex string to bytes", err)
	}

	return NewBlockFromBytes(blockBytes)
}

func (b *Block) Bytes() []byte {
	blockBytes := b.Header.Bytes()
	blockBytes = append(blockBytes, bt.VarInt(len(b.Txs)).Bytes()...)

	for _, tx := range b.Txs {
		blockBytes = append(blockBytes, tx.Bytes()...)
	}

	return blockBytes
}

// Hash is the double sha256 of the serialized header.
func (b *Block) Hash() *chainhash.Hash {
	hash, _ := chainhash.NewHash(crypto.Sha256d(b.Header.Bytes()))
	return hash
}

// EncodeHexBlock returns the raw block serialization as a hex string.
func EncodeHexBlock(b *Block) string {
	return hex.EncodeToString(b.Bytes())
}

type BlockJSON struct {
	Hash              string   `json:"hash"`
	Version           uint32   `json:"version"`
	PreviousBlockHash string   `json:"previousblockhash"`
	MerkleRoot        string   `json:"merkleroot"`
	Time              uint32   `json:"time"`
	Bits              string   `json:"bits"`
	Nonce             uint32   `json:"nonce"`
	Tx                []TxJSON `json:"tx"`
}

// BlockToJSON projects a block and every transaction in it.
func BlockToJSON(b *Block) BlockJSON {
	blockHash := b.Hash()

	out := BlockJSON{
		Hash:              blockHash.String(),
		Version:           b.Header.Version,
		PreviousBlockHash: b.Header.HashPrevBlock.String(),
		MerkleRoot:        b.Header.HashMerkleRoot.String(),
		Time:              b.Header.Timestamp,
		Bits:              hex.EncodeToString(b.Header.Bits),
		Nonce:             b.Header.Nonce,
		Tx:                make([]TxJSON, 0, len(b.Txs)),
	}

	for _, tx := range b.Txs {
		out.Tx = append(out.Tx, TxToJSON(tx, blockHash))
	}

	return out
}
