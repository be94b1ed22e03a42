package model

import (
	"bytes"
	"encoding/json"

	"github.com/libsv/go-p2p/chaincfg/chainhash"

	"github.com/josephnicholas/VerusCoin/errors"
	"github.com/josephnicholas/VerusCoin/keyio"
)

// IdentityVersionCurrent is the only identity version emitted.
const IdentityVersionCurrent = 1

// Principal is the signing-authority portion of an identity: a set of
// primary addresses and the number of signatures required from them.
type Principal struct {
	Version          int32
	Flags            int32
	PrimaryAddresses []keyio.Destination
	MinSigs          int32
}

func readPrincipal(r *bytes.Reader) (*Principal, error) {
	p := &Principal{}

	var err error
	if p.Version, err = readInt32(r); err != nil {
		return nil, err
	}
	if p.Flags, err = readInt32(r); err != nil {
		return nil, err
	}

	n, err := readVarInt(r)
	if err != nil {
		return nil, err
	}
	if n > maxVectorAllocation {
		return nil, errors.NewProcessingError("primary address vector length %d too large", n)
	}
	for i := uint64(0); i < n; i++ {
		d, err := readDestination(r)
		if err != nil {
			return nil, err
		}
		p.PrimaryAddresses = append(p.PrimaryAddresses, d)
	}

	if p.MinSigs, err = readInt32(r); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Principal) write(buf *bytes.Buffer) {
	writeInt32(buf, p.Version)
	writeInt32(buf, p.Flags)
	writeVarInt(buf, uint64(len(p.PrimaryAddresses)))
	for _, d := range p.PrimaryAddresses {
		writeDestination(buf, d)
	}
	writeInt32(buf, p.MinSigs)
}

// IsValid enforces the signature-threshold invariant: the required count can
// never exceed the available addresses.
func (p *Principal) IsValid() bool {
	if p.Version < 1 || p.Version > IdentityVersionCurrent {
		return false
	}
	return p.MinSigs >= 1 && int(p.MinSigs) <= len(p.PrimaryAddresses)
}

type PrincipalJSON struct {
	Version           int32    `json:"version"`
	Flags             int32    `json:"flags"`
	PrimaryAddresses  []string `json:"primaryaddresses"`
	MinimumSignatures int32    `json:"minimumsignatures"`
}

func (p *Principal) ToJSON() PrincipalJSON {
	addrs := make([]string, 0, len(p.PrimaryAddresses))
	for _, d := range p.PrimaryAddresses {
		addrs = append(addrs, keyio.EncodeDestination(d))
	}

	return PrincipalJSON{
		Version:           p.Version,
		Flags:             p.Flags,
		PrimaryAddresses:  addrs,
		MinimumSignatures: p.MinSigs,
	}
}

// ContentEntry is one hash-to-hash attestation in an identity's content map.
type ContentEntry struct {
	Key   chainhash.Hash
	Value chainhash.Hash
}

// ContentMap preserves attestation order for projection.
type ContentMap []ContentEntry

func (m ContentMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, entry := range m {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(entry.Key.String())
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		value, err := json.Marshal(entry.Value.String())
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Identity extends a Principal with naming, attestation and recovery. The
// identifier is derived from (name, parent) and never stored on the wire.
type Identity struct {
	Principal
	Parent              keyio.ID
	Name                string
	ContentMap          ContentMap
	RevocationAuthority keyio.ID
	RecoveryAuthority   keyio.ID
	PrivateAddresses    []string
}

func NewIdentityFromBytes(b []byte) (*Identity, error) {
	r := bytes.NewReader(b)
	id := &Identity{}

	base, err := readPrincipal(r)
	if err != nil {
		return nil, err
	}
	id.Principal = *base

	if id.Parent, err = readID(r); err != nil {
		return nil, err
	}
	if id.Name, err = readString(r); err != nil {
		return nil, err
	}
	if len(id.Name) > maxCurrencyNameLen {
		return nil, errors.NewPayloadInvalidError("identity name too long")
	}

	n, err := readVarInt(r)
	if err != nil {
		return nil, err
	}
	if n > maxVectorAllocation {
		return nil, errors.NewProcessingError("content map length %d too large", n)
	}
	for i := uint64(0); i < n; i++ {
		var entry ContentEntry
		if entry.Key, err = readHash(r); err != nil {
			return nil, err
		}
		if entry.Value, err = readHash(r); err != nil {
			return nil, err
		}
		id.ContentMap = append(id.ContentMap, entry)
	}

	if id.RevocationAuthority, err = readID(r); err != nil {
		return nil, err
	}
	if id.RecoveryAuthority, err = readID(r); err != nil {
		return nil, err
	}

	n, err = readVarInt(r)
	if err != nil {
		return nil, err
	}
	if n > maxVectorAllocation {
		return nil, errors.NewProcessingError("private address vector length %d too large", n)
	}
	for i := uint64(0); i < n; i++ {
		addr, err := readString(r)
		if err != nil {
			return nil, err
		}
		id.PrivateAddresses = append(id.PrivateAddresses, addr)
	}

	return id, nil
}

func (id *Identity) Bytes() []byte {
	buf := bytes.NewBuffer(nil)
	id.Principal.write(buf)
	writeID(buf, id.Parent)
	writeString(buf, id.Name)
	writeVarInt(buf, uint64(len(id.ContentMap)))
	for _, entry := range id.ContentMap {
		writeHash(buf, entry.Key)
		writeHash(buf, entry.Value)
	}
	writeID(buf, id.RevocationAuthority)
	writeID(buf, id.RecoveryAuthority)
	writeVarInt(buf, uint64(len(id.PrivateAddresses)))
	for _, addr := range id.PrivateAddresses {
		writeString(buf, addr)
	}
	return buf.Bytes()
}

func (id *Identity) IsValid() bool {
	return id.Principal.IsValid() && id.Name != "" && len(id.Name) <= maxCurrencyNameLen
}

// GetID derives the identity's identifier from its name and parent.
func (id *Identity) GetID() keyio.ID {
	return keyio.IdentityID(id.Name, id.Parent)
}

type IdentityJSON struct {
	PrincipalJSON
	IdentityAddress     string     `json:"identityaddress"`
	Parent              string     `json:"parent"`
	Name                string     `json:"name"`
	ContentMap          ContentMap `json:"contentmap"`
	RevocationAuthority string     `json:"revocationauthority"`
	RecoveryAuthority   string     `json:"recoveryauthority"`
	PrivateAddress      string     `json:"privateaddress,omitempty"`
}

func (id *Identity) ToJSON() IdentityJSON {
	ret := IdentityJSON{
		PrincipalJSON:       id.Principal.ToJSON(),
		IdentityAddress:     keyio.EncodeID(id.GetID()),
		Parent:              keyio.EncodeID(id.Parent),
		Name:                id.Name,
		ContentMap:          id.ContentMap,
		RevocationAuthority: keyio.EncodeID(id.RevocationAuthority),
		RecoveryAuthority:   keyio.EncodeID(id.RecoveryAuthority),
	}

	// only the first private address is surfaced
	if len(id.PrivateAddresses) > 0 {
		ret.PrivateAddress = id.PrivateAddresses[0]
	}

	return ret
}
