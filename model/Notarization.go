package model

import (
	"bytes"
	"math/big"

	"github.com/libsv/go-p2p/chaincfg/chainhash"

	"github.com/josephnicholas/VerusCoin/errors"
	"github.com/josephnicholas/VerusCoin/keyio"
)

// NotarizationVersionCurrent is the only notarization version emitted.
const NotarizationVersionCurrent = 1

// NodeData advertises one network node capable of serving the notarized
// chain.
type NodeData struct {
	NetworkAddress string
	NodeIdentity   keyio.ID
}

type NodeDataJSON struct {
	NetworkAddress string `json:"networkaddress"`
	NodeIdentity   string `json:"nodeidentity"`
}

func (n NodeData) ToJSON() NodeDataJSON {
	return NodeDataJSON{
		NetworkAddress: n.NetworkAddress,
		NodeIdentity:   keyio.EncodeID(n.NodeIdentity),
	}
}

// Notarization is a checkpoint linking this chain's state to a counterpart
// chain's. PrevNotarization/PrevHeight chain checkpoints backward on this
// chain; CrossNotarization/CrossHeight independently reference the last
// known checkpoint on the counterpart chain. Records are append-only and
// immutable once accepted.
//
// CompactPower packs accumulated proof-of-work into the low 128 bits of a
// 256-bit little-endian quantity and accumulated proof-of-stake into the
// high 128 bits.
type Notarization struct {
	Version             int32
	SystemID            keyio.ID
	NotaryDest          keyio.Destination
	NotarizationHeight  uint32
	MMRRoot             chainhash.Hash
	NotarizationPreHash chainhash.Hash
	CompactPower        chainhash.Hash
	CurrencyState       *CoinbaseCurrencyState
	PrevNotarization    chainhash.Hash
	PrevHeight          uint32
	CrossNotarization   chainhash.Hash
	CrossHeight         uint32
	Nodes               []NodeData
}

func NewNotarizationFromBytes(b []byte) (*Notarization, error) {
	r := bytes.NewReader(b)
	n := &Notarization{}

	var err error
	if n.Version, err = readInt32(r); err != nil {
		return nil, err
	}
	if n.SystemID, err = readID(r); err != nil {
		return nil, err
	}
	if n.NotaryDest, err = readDestination(r); err != nil {
		return nil, err
	}
	if n.NotarizationHeight, err = readUint32(r); err != nil {
		return nil, err
	}
	if n.MMRRoot, err = readHash(r); err != nil {
		return nil, err
	}
	if n.NotarizationPreHash, err = readHash(r); err != nil {
		return nil, err
	}
	if n.CompactPower, err = readHash(r); err != nil {
		return nil, err
	}

	stateBytes, err := readVarBytes(r)
	if err != nil {
		return nil, err
	}
	if n.CurrencyState, err = NewCoinbaseCurrencyStateFromBytes(stateBytes); err != nil {
		return nil, err
	}

	if n.PrevNotarization, err = readHash(r); err != nil {
		return nil, err
	}
	if n.PrevHeight, err = readUint32(r); err != nil {
		return nil, err
	}
	if n.CrossNotarization, err = readHash(r); err != nil {
		return nil, err
	}
	if n.CrossHeight, err = readUint32(r); err != nil {
		return nil, err
	}

	nodeCount, err := readVarInt(r)
	if err != nil {
		return nil, err
	}
	if nodeCount > maxVectorAllocation {
		return nil, errors.NewProcessingError("node vector length %d too large", nodeCount)
	}
	for i := uint64(0); i < nodeCount; i++ {
		var node NodeData
		if node.NetworkAddress, err = readString(r); err != nil {
			return nil, err
		}
		if node.NodeIdentity, err = readID(r); err != nil {
			return nil, err
		}
		n.Nodes = append(n.Nodes, node)
	}

	return n, nil
}

func (n *Notarization) Bytes() []byte {
	buf := bytes.NewBuffer(nil)
	writeInt32(buf, n.Version)
	writeID(buf, n.SystemID)
	writeDestination(buf, n.NotaryDest)
	writeUint32(buf, n.NotarizationHeight)
	writeHash(buf, n.MMRRoot)
	writeHash(buf, n.NotarizationPreHash)
	writeHash(buf, n.CompactPower)
	writeVarBytes(buf, n.CurrencyState.Bytes())
	writeHash(buf, n.PrevNotarization)
	writeUint32(buf, n.PrevHeight)
	writeHash(buf, n.CrossNotarization)
	writeUint32(buf, n.CrossHeight)
	writeVarInt(buf, uint64(len(n.Nodes)))
	for _, node := range n.Nodes {
		writeString(buf, node.NetworkAddress)
		writeID(buf, node.NodeIdentity)
	}
	return buf.Bytes()
}

func (n *Notarization) IsValid() bool {
	return n.Version >= 1 && n.Version <= NotarizationVersionCurrent && !n.SystemID.IsNull()
}

// Work returns the accumulated proof-of-work: the low 128 bits of
// CompactPower as a decimal string.
func (n *Notarization) Work() string {
	return compactPowerHalf(n.CompactPower, 0)
}

// Stake returns the accumulated proof-of-stake: the high 128 bits of
// CompactPower as a decimal string.
func (n *Notarization) Stake() string {
	return compactPowerHalf(n.CompactPower, 16)
}

// compactPowerHalf extracts 128 bits starting at the given little-endian
// byte offset and renders them as decimal.
func compactPowerHalf(power chainhash.Hash, offset int) string {
	// big.Int wants big-endian
	be := make([]byte, 16)
	for i := 0; i < 16; i++ {
		be[15-i] = power[offset+i]
	}
	return new(big.Int).SetBytes(be).String()
}

type NotarizationJSON struct {
	Version             int32                     `json:"version"`
	ChainID             string                    `json:"chainid"`
	NotaryAddress       string                    `json:"notaryaddress"`
	NotarizationHeight  int64                     `json:"notarizationheight"`
	MMRRoot             string                    `json:"mmrroot"`
	NotarizationPreHash string                    `json:"notarizationprehash"`
	Work                string                    `json:"work"`
	Stake               string                    `json:"stake"`
	CurrencyState       CoinbaseCurrencyStateJSON `json:"currencystate"`
	PrevNotarization    string                    `json:"prevnotarization"`
	PrevHeight          int64                     `json:"prevheight"`
	CrossNotarization   string                    `json:"crossnotarization"`
	CrossHeight         int64                     `json:"crossheight"`
	Nodes               []NodeDataJSON            `json:"nodes"`
}

func (n *Notarization) ToJSON() NotarizationJSON {
	ret := NotarizationJSON{
		Version:             n.Version,
		ChainID:             n.SystemID.Hex(),
		NotaryAddress:       keyio.EncodeDestination(n.NotaryDest),
		NotarizationHeight:  int64(n.NotarizationHeight),
		MMRRoot:             n.MMRRoot.String(),
		NotarizationPreHash: n.NotarizationPreHash.String(),
		Work:                n.Work(),
		Stake:               n.Stake(),
		CurrencyState:       n.CurrencyState.ToJSON(),
		PrevNotarization:    n.PrevNotarization.String(),
		PrevHeight:          int64(n.PrevHeight),
		CrossNotarization:   n.CrossNotarization.String(),
		CrossHeight:         int64(n.CrossHeight),
		Nodes:               make([]NodeDataJSON, 0, len(n.Nodes)),
	}

	for _, node := range n.Nodes {
		ret.Nodes = append(ret.Nodes, node.ToJSON())
	}

	return ret
}
