package model

import (
	"bytes"
	"encoding/json"

	"github.com/josephnicholas/VerusCoin/keyio"
)

// CoinbaseCurrencyState extends the reserve-pool snapshot with one block's
// flows. Each flow array is index-aligned with the basket; shorter arrays
// read as zero per member, which keeps a stale or pruned record projectable.
type CoinbaseCurrencyState struct {
	CurrencyState
	ReserveIn            []Amount
	NativeIn             []Amount
	ReserveOut           []Amount
	ConversionPrice      []Amount
	Fees                 []Amount
	ConversionFees       []Amount
	NativeFees           int64
	NativeConversionFees int64
}

func NewCoinbaseCurrencyStateFromBytes(b []byte) (*CoinbaseCurrencyState, error) {
	r := bytes.NewReader(b)
	s := &CoinbaseCurrencyState{}

	base, err := readCurrencyState(r)
	if err != nil {
		return nil, err
	}
	s.CurrencyState = *base

	for _, dst := range []*[]Amount{&s.ReserveIn, &s.NativeIn, &s.ReserveOut, &s.ConversionPrice, &s.Fees, &s.ConversionFees} {
		if *dst, err = readAmounts(r); err != nil {
			return nil, err
		}
	}

	if s.NativeFees, err = readInt64(r); err != nil {
		return nil, err
	}
	if s.NativeConversionFees, err = readInt64(r); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *CoinbaseCurrencyState) Bytes() []byte {
	buf := bytes.NewBuffer(nil)
	s.CurrencyState.write(buf)
	for _, v := range [][]Amount{s.ReserveIn, s.NativeIn, s.ReserveOut, s.ConversionPrice, s.Fees, s.ConversionFees} {
		writeAmounts(buf, v)
	}
	writeInt64(buf, s.NativeFees)
	writeInt64(buf, s.NativeConversionFees)
	return buf.Bytes()
}

// flowRowJSON is one basket member's row in the per-block flow table; the
// column set is fixed.
type flowRowJSON struct {
	ReserveIn           Amount `json:"reservein"`
	NativeIn            Amount `json:"nativein"`
	ReserveOut          Amount `json:"reserveout"`
	LastConversionPrice Amount `json:"lastconversionprice"`
	Fees                Amount `json:"fees"`
	ConversionFees      Amount `json:"conversionfees"`
}

// FlowTable projects the two-axis flow table: one row per basket member in
// basket order, keyed by the member's encoded identifier.
type FlowTable struct {
	rows []keyio.ID
	data map[keyio.ID]flowRowJSON
}

func (t FlowTable) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, id := range t.rows {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(keyio.EncodeID(id))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		row, err := json.Marshal(t.data[id])
		if err != nil {
			return nil, err
		}
		buf.Write(row)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type CoinbaseCurrencyStateJSON struct {
	CurrencyStateJSON
	Currencies           FlowTable `json:"currencies"`
	NativeFees           int64     `json:"nativefees"`
	NativeConversionFees int64     `json:"nativeconversionfees"`
}

func (s *CoinbaseCurrencyState) ToJSON() CoinbaseCurrencyStateJSON {
	table := FlowTable{data: make(map[keyio.ID]flowRowJSON, len(s.Currencies))}

	for i, id := range s.Currencies {
		table.rows = append(table.rows, id)
		table.data[id] = flowRowJSON{
			ReserveIn:           amountAt(s.ReserveIn, i),
			NativeIn:            amountAt(s.NativeIn, i),
			ReserveOut:          amountAt(s.ReserveOut, i),
			LastConversionPrice: amountAt(s.ConversionPrice, i),
			Fees:                amountAt(s.Fees, i),
			ConversionFees:      amountAt(s.ConversionFees, i),
		}
	}

	return CoinbaseCurrencyStateJSON{
		CurrencyStateJSON:    s.CurrencyState.ToJSON(),
		Currencies:           table,
		NativeFees:           s.NativeFees,
		NativeConversionFees: s.NativeConversionFees,
	}
}
