package model

import "bytes"

// ReserveExchange flag bits.
const (
	ExchangeToReserve  uint32 = 1 << 0
	ExchangeLimit      uint32 = 1 << 1
	ExchangeFillOrKill uint32 = 1 << 2
	ExchangeSendOutput uint32 = 1 << 3
)

// ReserveExchange is a conversion order between a currency and its reserve,
// not a plain transfer. The limit price is meaningful only with LIMIT set
// and the expiry height only with FILL_OR_KILL.
type ReserveExchange struct {
	TokenOutput
	Flags       uint32
	Limit       Amount
	ValidBefore uint32
}

func NewReserveExchangeFromBytes(b []byte) (*ReserveExchange, error) {
	r := bytes.NewReader(b)
	re := &ReserveExchange{}

	base, err := readTokenOutput(r)
	if err != nil {
		return nil, err
	}
	re.TokenOutput = *base

	if re.Flags, err = readUint32(r); err != nil {
		return nil, err
	}
	if re.Limit, err = readAmount(r); err != nil {
		return nil, err
	}
	if re.ValidBefore, err = readUint32(r); err != nil {
		return nil, err
	}

	return re, nil
}

func (re *ReserveExchange) Bytes() []byte {
	buf := bytes.NewBuffer(nil)
	re.TokenOutput.write(buf)
	writeUint32(buf, re.Flags)
	writeAmount(buf, re.Limit)
	writeUint32(buf, re.ValidBefore)
	return buf.Bytes()
}

func (re *ReserveExchange) IsValid() bool {
	return re.TokenOutput.IsValid()
}

func (re *ReserveExchange) HasFlag(flag uint32) bool {
	return re.Flags&flag != 0
}

type ReserveExchangeJSON struct {
	TokenOutputJSON
	ToReserve   bool    `json:"toreserve"`
	ToNative    bool    `json:"tonative"`
	LimitOrder  bool    `json:"limitorder"`
	LimitPrice  *Amount `json:"limitprice,omitempty"`
	FillOrKill  bool    `json:"fillorkill"`
	ValidBefore *int64  `json:"validbeforeblock,omitempty"`
	SendOutput  bool    `json:"sendoutput"`
}

func (re *ReserveExchange) ToJSON() ReserveExchangeJSON {
	ret := ReserveExchangeJSON{
		TokenOutputJSON: re.TokenOutput.ToJSON(),
		ToReserve:       re.HasFlag(ExchangeToReserve),
		ToNative:        !re.HasFlag(ExchangeToReserve),
		LimitOrder:      re.HasFlag(ExchangeLimit),
		FillOrKill:      re.HasFlag(ExchangeFillOrKill),
		SendOutput:      re.HasFlag(ExchangeSendOutput),
	}

	if re.HasFlag(ExchangeLimit) {
		limit := re.Limit
		ret.LimitPrice = &limit
	}
	if re.HasFlag(ExchangeFillOrKill) {
		validBefore := int64(re.ValidBefore)
		ret.ValidBefore = &validBefore
	}

	return ret
}
