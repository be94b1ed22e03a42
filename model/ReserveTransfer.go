package model

import (
	"bytes"

	"github.com/josephnicholas/VerusCoin/keyio"
)

// ReserveTransfer flag bits.
const (
	TransferConvert      uint32 = 1 << 0
	TransferPreconvert   uint32 = 1 << 1
	TransferFeeOutput    uint32 = 1 << 2
	TransferSendBack     uint32 = 1 << 3
	TransferMintCurrency uint32 = 1 << 4
	TransferPreallocate  uint32 = 1 << 5
)

// ReserveTransfer moves value of one currency toward a destination currency,
// optionally converting on the way. PREALLOCATE and MINT_CURRENCY are
// terminal states: when either is set the conversion flags are meaningless
// and suppressed from the projection.
type ReserveTransfer struct {
	TokenOutput
	Flags          uint32
	Fees           Amount
	DestCurrencyID keyio.ID
	Destination    keyio.Destination
}

func NewReserveTransferFromBytes(b []byte) (*ReserveTransfer, error) {
	r := bytes.NewReader(b)
	rt := &ReserveTransfer{}

	base, err := readTokenOutput(r)
	if err != nil {
		return nil, err
	}
	rt.TokenOutput = *base

	flags, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	rt.Flags = flags

	if rt.Fees, err = readAmount(r); err != nil {
		return nil, err
	}
	if rt.DestCurrencyID, err = readID(r); err != nil {
		return nil, err
	}
	if rt.Destination, err = readDestination(r); err != nil {
		return nil, err
	}

	return rt, nil
}

func (rt *ReserveTransfer) Bytes() []byte {
	buf := bytes.NewBuffer(nil)
	rt.TokenOutput.write(buf)
	writeUint32(buf, rt.Flags)
	writeAmount(buf, rt.Fees)
	writeID(buf, rt.DestCurrencyID)
	writeDestination(buf, rt.Destination)
	return buf.Bytes()
}

func (rt *ReserveTransfer) IsValid() bool {
	return rt.TokenOutput.IsValid() && rt.Destination.Type != keyio.DestInvalid
}

func (rt *ReserveTransfer) HasFlag(flag uint32) bool {
	return rt.Flags&flag != 0
}

type ReserveTransferJSON struct {
	TokenOutputJSON
	Preallocation  *bool  `json:"preallocation,omitempty"`
	MintedCurrency *bool  `json:"mintedcurrency,omitempty"`
	Convert        *bool  `json:"convert,omitempty"`
	Preconvert     *bool  `json:"preconvert,omitempty"`
	FeeOutput      *bool  `json:"feeoutput,omitempty"`
	SendBack       *bool  `json:"sendback,omitempty"`
	Fees           Amount `json:"fees"`
	DestCurrencyID string `json:"destinationcurrencyid"`
	Destination    string `json:"destination"`
}

// ToJSON projects the transfer. Exactly one semantic branch applies:
// preallocation, minted currency, or the plain conversion flag set.
func (rt *ReserveTransfer) ToJSON() ReserveTransferJSON {
	ret := ReserveTransferJSON{
		TokenOutputJSON: rt.TokenOutput.ToJSON(),
		Fees:            rt.Fees,
		DestCurrencyID:  keyio.EncodeID(rt.DestCurrencyID),
		Destination:     keyio.EncodeDestination(rt.Destination),
	}

	switch {
	case rt.HasFlag(TransferPreallocate):
		ret.Preallocation = boolPtr(true)
	case rt.HasFlag(TransferMintCurrency):
		ret.MintedCurrency = boolPtr(true)
	default:
		ret.Convert = boolPtr(rt.HasFlag(TransferConvert))
		ret.Preconvert = boolPtr(rt.HasFlag(TransferPreconvert))
		ret.FeeOutput = boolPtr(rt.HasFlag(TransferFeeOutput))
		ret.SendBack = boolPtr(rt.HasFlag(TransferSendBack))
	}

	return ret
}

func boolPtr(b bool) *bool {
	return &b
}
