package model

import (
	"bytes"

	"github.com/josephnicholas/VerusCoin/keyio"
)

// CrossChainImportVersionCurrent is the only import version emitted.
const CrossChainImportVersionCurrent = 1

// CrossChainImport records value entering this system, conceptually paired
// with a CrossChainExport on the counterpart system. Conservation across the
// pair is a consensus invariant checked elsewhere; this record only carries
// the numbers.
type CrossChainImport struct {
	Version            int32
	SystemID           keyio.ID
	ImportValue        *CurrencyValueMap
	TotalReserveOutMap *CurrencyValueMap
}

func NewCrossChainImportFromBytes(b []byte) (*CrossChainImport, error) {
	r := bytes.NewReader(b)
	im := &CrossChainImport{}

	var err error
	if im.Version, err = readInt32(r); err != nil {
		return nil, err
	}
	if im.SystemID, err = readID(r); err != nil {
		return nil, err
	}
	if im.ImportValue, err = readCurrencyValueMap(r); err != nil {
		return nil, err
	}
	if im.TotalReserveOutMap, err = readCurrencyValueMap(r); err != nil {
		return nil, err
	}

	return im, nil
}

func (im *CrossChainImport) Bytes() []byte {
	buf := bytes.NewBuffer(nil)
	writeInt32(buf, im.Version)
	writeID(buf, im.SystemID)
	buf.Write(im.ImportValue.Bytes())
	buf.Write(im.TotalReserveOutMap.Bytes())
	return buf.Bytes()
}

func (im *CrossChainImport) IsValid() bool {
	return im.Version >= 1 && im.Version <= CrossChainImportVersionCurrent && !im.SystemID.IsNull()
}

type CrossChainImportJSON struct {
	Version   int32             `json:"version"`
	SystemID  string            `json:"systemid"`
	ValueIn   *CurrencyValueMap `json:"valuein"`
	TokensOut *CurrencyValueMap `json:"tokensout"`
}

func (im *CrossChainImport) ToJSON() CrossChainImportJSON {
	return CrossChainImportJSON{
		Version:   im.Version,
		SystemID:  keyio.EncodeID(im.SystemID),
		ValueIn:   im.ImportValue,
		TokensOut: im.TotalReserveOutMap,
	}
}
