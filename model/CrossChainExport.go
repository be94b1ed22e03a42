package model

import (
	"bytes"

	"github.com/josephnicholas/VerusCoin/keyio"
)

// CrossChainExportVersionCurrent is the only export version emitted.
const CrossChainExportVersionCurrent = 1

// CrossChainExport proves value left this system through a bridge: the
// aggregate of NumInputs exported UTXOs. Fees are a subset of the exported
// value, so TotalAmounts must dominate TotalFees component-wise.
type CrossChainExport struct {
	Version      int32
	SystemID     keyio.ID
	NumInputs    int32
	TotalAmounts *CurrencyValueMap
	TotalFees    *CurrencyValueMap
}

func NewCrossChainExportFromBytes(b []byte) (*CrossChainExport, error) {
	r := bytes.NewReader(b)
	e := &CrossChainExport{}

	var err error
	if e.Version, err = readInt32(r); err != nil {
		return nil, err
	}
	if e.SystemID, err = readID(r); err != nil {
		return nil, err
	}
	if e.NumInputs, err = readInt32(r); err != nil {
		return nil, err
	}
	if e.TotalAmounts, err = readCurrencyValueMap(r); err != nil {
		return nil, err
	}
	if e.TotalFees, err = readCurrencyValueMap(r); err != nil {
		return nil, err
	}

	return e, nil
}

func (e *CrossChainExport) Bytes() []byte {
	buf := bytes.NewBuffer(nil)
	writeInt32(buf, e.Version)
	writeID(buf, e.SystemID)
	writeInt32(buf, e.NumInputs)
	buf.Write(e.TotalAmounts.Bytes())
	buf.Write(e.TotalFees.Bytes())
	return buf.Bytes()
}

func (e *CrossChainExport) IsValid() bool {
	if e.Version < 1 || e.Version > CrossChainExportVersionCurrent {
		return false
	}
	if e.SystemID.IsNull() || e.NumInputs < 0 {
		return false
	}
	return e.TotalAmounts.Dominates(e.TotalFees)
}

type CrossChainExportJSON struct {
	Version      int32             `json:"version"`
	SystemID     string            `json:"systemid"`
	NumInputs    int32             `json:"numinputs"`
	TotalAmounts *CurrencyValueMap `json:"totalamounts"`
	TotalFees    *CurrencyValueMap `json:"totalfees"`
}

func (e *CrossChainExport) ToJSON() CrossChainExportJSON {
	return CrossChainExportJSON{
		Version:      e.Version,
		SystemID:     keyio.EncodeID(e.SystemID),
		NumInputs:    e.NumInputs,
		TotalAmounts: e.TotalAmounts,
		TotalFees:    e.TotalFees,
	}
}
