// Package keyio implements the checksummed textual encoding of 160-bit
// identifiers used throughout the chain: key hashes, script hashes, identity
// addresses and quantum-safe key hashes all share the same base58check layout
// and differ only in their leading version byte.
package keyio

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/libsv/go-bk/crypto"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ripemd160" //nolint:gosec // address hashing requires ripemd160

	"github.com/josephnicholas/VerusCoin/errors"
)

// IDLen is the byte length of every on-chain identifier.
const IDLen = 20

// ID is a 160-bit identifier: a hashed public key, a hashed script, or a
// derived identity/currency identifier.
type ID [IDLen]byte

// NilID is the zero identifier, used as the "block one miner" sentinel in
// pre-allocations and as the null parent.
var NilID ID

// Address version bytes. Identity addresses double as currency identifiers.
const (
	PubKeyHashAddressID  = 60  // "R" prefix
	ScriptHashAddressID  = 85  // "b" prefix
	IdentityAddressID    = 102 // "i" prefix
	QuantumKeyAddressID  = 103
	checksumLen          = 4
)

// DestinationType tags the interpretation of a transfer destination's bytes.
type DestinationType uint8

const (
	DestInvalid DestinationType = iota
	DestPubKey
	DestPubKeyHash
	DestScriptHash
	DestID
	DestQuantum
	DestRaw
)

// Destination is a typed payment target. For the hash-based types Data holds
// a 160-bit identifier; for DestRaw it is opaque.
type Destination struct {
	Type DestinationType
	Data []byte
}

func NewID(b []byte) (ID, error) {
	var id ID
	if len(b) != IDLen {
		return id, errors.NewInvalidArgumentError("identifier must be %d bytes, got %d", IDLen, len(b))
	}
	copy(id[:], b)
	return id, nil
}

func (id ID) IsNull() bool {
	return id == NilID
}

func (id ID) Bytes() []byte {
	b := make([]byte, IDLen)
	copy(b, id[:])
	return b
}

// Hex returns the identifier as hex, matching the raw 160-bit rendering used
// for notarization chain IDs.
func (id ID) Hex() string {
	return hex.EncodeToString(id[:])
}

// checkEncode produces base58(version || payload || sha256d(version||payload)[:4]).
func checkEncode(version byte, payload []byte) string {
	b := make([]byte, 0, 1+len(payload)+checksumLen)
	b = append(b, version)
	b = append(b, payload...)
	sum := crypto.Sha256d(b)
	b = append(b, sum[:checksumLen]...)
	return base58.Encode(b)
}

func checkDecode(s string) (byte, []byte, error) {
	decoded, err := base58.Decode(s)
	if err != nil {
		return 0, nil, errors.NewInvalidArgumentError("malformed base58 string", err)
	}
	if len(decoded) < 1+checksumLen {
		return 0, nil, errors.NewInvalidArgumentError("base58 string too short")
	}
	payload := decoded[:len(decoded)-checksumLen]
	sum := crypto.Sha256d(payload)
	if !bytes.Equal(sum[:checksumLen], decoded[len(decoded)-checksumLen:]) {
		return 0, nil, errors.NewInvalidArgumentError("address checksum mismatch")
	}
	return payload[0], payload[1:], nil
}

// Hash160 is ripemd160(sha256(b)).
func Hash160(b []byte) ID {
	sum := sha256.Sum256(b)
	h := ripemd160.New()
	h.Write(sum[:])
	var id ID
	copy(id[:], h.Sum(nil))
	return id
}

// EncodeID renders a currency or identity identifier in its canonical
// "i"-prefixed form.
func EncodeID(id ID) string {
	return checkEncode(IdentityAddressID, id[:])
}

// DecodeID parses any of the four hash-based address forms and returns the
// embedded 160-bit identifier. The zero ID is never a valid decode result.
func DecodeID(s string) (ID, error) {
	d, err := DecodeDestination(s)
	if err != nil {
		return NilID, err
	}
	id, err := NewID(d.Data)
	if err != nil {
		return NilID, err
	}
	if id.IsNull() {
		return NilID, errors.NewInvalidArgumentError("null identifier")
	}
	return id, nil
}

// EncodeDestination renders a destination in its context-sensitive textual
// form. Unrecognized destination types fall back to raw hex so that no
// destination is ever unprintable.
func EncodeDestination(d Destination) string {
	switch d.Type {
	case DestPubKeyHash:
		return checkEncode(PubKeyHashAddressID, d.Data)
	case DestScriptHash:
		return checkEncode(ScriptHashAddressID, d.Data)
	case DestID:
		return checkEncode(IdentityAddressID, d.Data)
	case DestQuantum:
		return checkEncode(QuantumKeyAddressID, d.Data)
	default:
		return hex.EncodeToString(d.Data)
	}
}

// DecodeDestination parses a checksummed address back into its typed form.
func DecodeDestination(s string) (Destination, error) {
	version, payload, err := checkDecode(s)
	if err != nil {
		return Destination{}, err
	}
	if len(payload) != IDLen {
		return Destination{}, errors.NewInvalidArgumentError("address payload must be %d bytes, got %d", IDLen, len(payload))
	}
	var t DestinationType
	switch version {
	case PubKeyHashAddressID:
		t = DestPubKeyHash
	case ScriptHashAddressID:
		t = DestScriptHash
	case IdentityAddressID:
		t = DestID
	case QuantumKeyAddressID:
		t = DestQuantum
	default:
		return Destination{}, errors.NewInvalidArgumentError("unknown address version %d", version)
	}
	return Destination{Type: t, Data: payload}, nil
}

// IDDestination wraps an identifier as an identity-typed destination.
func IDDestination(id ID) Destination {
	return Destination{Type: DestID, Data: id.Bytes()}
}

// IdentityID derives the identifier for (name, parent). Names are
// case-insensitive; the derivation is deterministic so the identifier is
// never stored redundantly.
func IdentityID(name string, parent ID) ID {
	h := sha256.New()
	h.Write(parent[:])
	h.Write([]byte(strings.ToLower(name)))
	return Hash160(h.Sum(nil))
}
