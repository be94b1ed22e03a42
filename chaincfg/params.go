package chaincfg

import (
	"strings"

	"github.com/josephnicholas/VerusCoin/errors"
	"github.com/josephnicholas/VerusCoin/keyio"
)

// Params defines a network by its parameters. These parameters may be used
// to differentiate networks as well as addresses and keys for one network
// from those intended for use on another network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net uint32

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// CoinName is the name of the network's native currency. The chain
	// identifier is derived from it.
	CoinName string

	// Address encoding magics.
	PubKeyHashAddrID byte
	ScriptHashAddrID byte
	IdentityAddrID   byte
	QuantumKeyAddrID byte
}

// ChainID returns the identifier of the network's native currency, derived
// from the coin name with a null parent.
func (p *Params) ChainID() keyio.ID {
	return keyio.IdentityID(p.CoinName, keyio.NilID)
}

// MainNetParams defines the network parameters for the main network.
var MainNetParams = Params{
	Name:        "mainnet",
	Net:         0xf9eee48d,
	DefaultPort: "27485",
	CoinName:    "VRSC",

	PubKeyHashAddrID: keyio.PubKeyHashAddressID,
	ScriptHashAddrID: keyio.ScriptHashAddressID,
	IdentityAddrID:   keyio.IdentityAddressID,
	QuantumKeyAddrID: keyio.QuantumKeyAddressID,
}

// TestNetParams defines the network parameters for the test network.
var TestNetParams = Params{
	Name:        "testnet",
	Net:         0xf2b1fab3,
	DefaultPort: "18843",
	CoinName:    "VRSCTEST",

	PubKeyHashAddrID: keyio.PubKeyHashAddressID,
	ScriptHashAddrID: keyio.ScriptHashAddressID,
	IdentityAddrID:   keyio.IdentityAddressID,
	QuantumKeyAddrID: keyio.QuantumKeyAddressID,
}

// RegressionNetParams defines the network parameters for the regression test
// network.
var RegressionNetParams = Params{
	Name:        "regtest",
	Net:         0xaae83f5f,
	DefaultPort: "18344",
	CoinName:    "VRSCREG",

	PubKeyHashAddrID: keyio.PubKeyHashAddressID,
	ScriptHashAddrID: keyio.ScriptHashAddressID,
	IdentityAddrID:   keyio.IdentityAddressID,
	QuantumKeyAddrID: keyio.QuantumKeyAddressID,
}

// GetChainParams returns the network parameters for the named network.
func GetChainParams(network string) (*Params, error) {
	switch strings.ToLower(network) {
	case "mainnet", "main":
		return &MainNetParams, nil
	case "testnet", "test":
		return &TestNetParams, nil
	case "regtest", "regression":
		return &RegressionNetParams, nil
	default:
		return nil, errors.NewConfigurationError("unknown network: %s", network)
	}
}
