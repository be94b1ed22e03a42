package model

import (
	"bytes"

	"github.com/josephnicholas/VerusCoin/keyio"
)

// IdentityExportVersionCurrent is the only identity-export version emitted.
const IdentityExportVersionCurrent = 1

// IdentityExport records an identity leaving for another system.
type IdentityExport struct {
	Version    int32
	IdentityID keyio.ID
	SystemID   keyio.ID
}

func NewIdentityExportFromBytes(b []byte) (*IdentityExport, error) {
	r := bytes.NewReader(b)
	e := &IdentityExport{}

	var err error
	if e.Version, err = readInt32(r); err != nil {
		return nil, err
	}
	if e.IdentityID, err = readID(r); err != nil {
		return nil, err
	}
	if e.SystemID, err = readID(r); err != nil {
		return nil, err
	}

	return e, nil
}

func (e *IdentityExport) Bytes() []byte {
	buf := bytes.NewBuffer(nil)
	writeInt32(buf, e.Version)
	writeID(buf, e.IdentityID)
	writeID(buf, e.SystemID)
	return buf.Bytes()
}

func (e *IdentityExport) IsValid() bool {
	return e.Version >= 1 && e.Version <= IdentityExportVersionCurrent && !e.IdentityID.IsNull() && !e.SystemID.IsNull()
}

type IdentityExportJSON struct {
	Version    int32  `json:"version"`
	IdentityID string `json:"identityid"`
	SystemID   string `json:"systemid"`
}

func (e *IdentityExport) ToJSON() IdentityExportJSON {
	return IdentityExportJSON{
		Version:    e.Version,
		IdentityID: keyio.EncodeID(e.IdentityID),
		SystemID:   keyio.EncodeID(e.SystemID),
	}
}
