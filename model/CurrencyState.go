package model

import (
	"bytes"

	"github.com/josephnicholas/VerusCoin/keyio"
)

// CurrencyState flag bits.
const (
	StateValid   int32 = 1 << 0
	StateReserve int32 = 1 << 1
)

// PriceFunc computes the price of one reserve-basket member in its reserve
// currency from the snapshot. The derivation lives in an external pricing
// component; this package stores and projects the result only.
type PriceFunc func(state *CurrencyState, i int) Amount

// PriceInReserve is the injected pricing function. The default reports zero
// for every basket member; consumers that know the bonding-curve formula
// replace it before projecting.
var PriceInReserve PriceFunc = func(*CurrencyState, int) Amount { return 0 }

// CurrencyState is the reserve-pool snapshot of a currency: the basket
// members with their weights and reserves plus the supply counters. Weights
// and reserves are index-aligned with currencies; on the wire the arrays may
// be shorter and missing entries read as zero.
type CurrencyState struct {
	Flags         int32
	Currencies    []keyio.ID
	Weights       []Amount
	Reserves      []Amount
	InitialSupply Amount
	Emitted       Amount
	Supply        Amount
}

func NewCurrencyStateFromBytes(b []byte) (*CurrencyState, error) {
	r := bytes.NewReader(b)
	return readCurrencyState(r)
}

func readCurrencyState(r *bytes.Reader) (*CurrencyState, error) {
	s := &CurrencyState{}

	var err error
	if s.Flags, err = readInt32(r); err != nil {
		return nil, err
	}
	if s.Currencies, err = readIDs(r); err != nil {
		return nil, err
	}
	if s.Weights, err = readAmounts(r); err != nil {
		return nil, err
	}
	if s.Reserves, err = readAmounts(r); err != nil {
		return nil, err
	}
	if s.InitialSupply, err = readAmount(r); err != nil {
		return nil, err
	}
	if s.Emitted, err = readAmount(r); err != nil {
		return nil, err
	}
	if s.Supply, err = readAmount(r); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *CurrencyState) Bytes() []byte {
	buf := bytes.NewBuffer(nil)
	s.write(buf)
	return buf.Bytes()
}

func (s *CurrencyState) write(buf *bytes.Buffer) {
	writeInt32(buf, s.Flags)
	writeIDs(buf, s.Currencies)
	writeAmounts(buf, s.Weights)
	writeAmounts(buf, s.Reserves)
	writeAmount(buf, s.InitialSupply)
	writeAmount(buf, s.Emitted)
	writeAmount(buf, s.Supply)
}

func (s *CurrencyState) IsValid() bool {
	return s.Flags&StateValid != 0
}

// IsReserve reports whether the currency runs in reserve mode; weights and
// reserves are defined only then.
func (s *CurrencyState) IsReserve() bool {
	return s.Flags&StateReserve != 0
}

// WeightAt and ReserveAt are the bounds-checked accessors for the parallel
// basket arrays.
func (s *CurrencyState) WeightAt(i int) Amount {
	return amountAt(s.Weights, i)
}

func (s *CurrencyState) ReserveAt(i int) Amount {
	return amountAt(s.Reserves, i)
}

type ReserveCurrencyJSON struct {
	CurrencyID     string `json:"currencyid"`
	Weight         Amount `json:"weight"`
	Reserves       Amount `json:"reserves"`
	PriceInReserve Amount `json:"priceinreserve"`
}

type CurrencyStateJSON struct {
	Flags             int32                 `json:"flags"`
	ReserveCurrencies []ReserveCurrencyJSON `json:"reservecurrencies,omitempty"`
	InitialSupply     Amount                `json:"initialsupply"`
	Emitted           Amount                `json:"emitted"`
	Supply            Amount                `json:"supply"`
}

func (s *CurrencyState) ToJSON() CurrencyStateJSON {
	ret := CurrencyStateJSON{
		Flags:         s.Flags,
		InitialSupply: s.InitialSupply,
		Emitted:       s.Emitted,
		Supply:        s.Supply,
	}

	if s.IsValid() && s.IsReserve() {
		for i, id := range s.Currencies {
			ret.ReserveCurrencies = append(ret.ReserveCurrencies, ReserveCurrencyJSON{
				CurrencyID:     keyio.EncodeID(id),
				Weight:         s.WeightAt(i),
				Reserves:       s.ReserveAt(i),
				PriceInReserve: PriceInReserve(s, i),
			})
		}
	}

	return ret
}
