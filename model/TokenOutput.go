package model

import (
	"bytes"

	"github.com/josephnicholas/VerusCoin/keyio"
)

// TokenOutputVersionCurrent is the only version this codec emits.
const TokenOutputVersionCurrent = 1

// TokenOutput is the base value-bearing unit: an amount of one currency.
type TokenOutput struct {
	Version    int32
	CurrencyID keyio.ID
	Value      Amount
}

func NewTokenOutputFromBytes(b []byte) (*TokenOutput, error) {
	r := bytes.NewReader(b)

	t, err := readTokenOutput(r)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func readTokenOutput(r *bytes.Reader) (*TokenOutput, error) {
	t := &TokenOutput{}

	var err error
	if t.Version, err = readInt32(r); err != nil {
		return nil, err
	}
	if t.CurrencyID, err = readID(r); err != nil {
		return nil, err
	}
	if t.Value, err = readAmount(r); err != nil {
		return nil, err
	}

	return t, nil
}

func (t *TokenOutput) Bytes() []byte {
	buf := bytes.NewBuffer(nil)
	t.write(buf)
	return buf.Bytes()
}

func (t *TokenOutput) write(buf *bytes.Buffer) {
	writeInt32(buf, t.Version)
	writeID(buf, t.CurrencyID)
	writeAmount(buf, t.Value)
}

func (t *TokenOutput) IsValid() bool {
	return t.Version >= 1 && t.Version <= TokenOutputVersionCurrent
}

// TokenOutputJSON is the canonical projection of a TokenOutput; record types
// that extend TokenOutput embed it to inherit the leading fields.
type TokenOutputJSON struct {
	Version    int64  `json:"version"`
	CurrencyID string `json:"currencyid"`
	Value      Amount `json:"value"`
}

func (t *TokenOutput) ToJSON() TokenOutputJSON {
	currencyID := "NULL"
	if !t.CurrencyID.IsNull() {
		currencyID = keyio.EncodeID(t.CurrencyID)
	}

	return TokenOutputJSON{
		Version:    int64(t.Version),
		CurrencyID: currencyID,
		Value:      t.Value,
	}
}
