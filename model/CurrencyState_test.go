package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephnicholas/VerusCoin/keyio"
)

func newTestCurrencyState() *CurrencyState {
	return &CurrencyState{
		Flags:         StateValid | StateReserve,
		Currencies:    []keyio.ID{cvmTestID(0x11), cvmTestID(0x22)},
		Weights:       []Amount{50000000, 50000000},
		Reserves:      []Amount{100000000, 200000000},
		InitialSupply: 1000 * SatoshisPerCoin,
		Emitted:       0,
		Supply:        1000 * SatoshisPerCoin,
	}
}

func TestCurrencyStateBytesRoundTrip(t *testing.T) {
	s := newTestCurrencyState()

	decoded, err := NewCurrencyStateFromBytes(s.Bytes())
	require.NoError(t, err)
	assert.Equal(t, s, decoded)
}

func TestCurrencyStateToJSONReserveBasket(t *testing.T) {
	s := newTestCurrencyState()

	got := s.ToJSON()
	require.Len(t, got.ReserveCurrencies, 2)
	assert.Equal(t, keyio.EncodeID(cvmTestID(0x11)), got.ReserveCurrencies[0].CurrencyID)
	assert.Equal(t, Amount(50000000), got.ReserveCurrencies[0].Weight)
	assert.Equal(t, Amount(200000000), got.ReserveCurrencies[1].Reserves)
	assert.Equal(t, Amount(0), got.ReserveCurrencies[0].PriceInReserve)
}

func TestCurrencyStateToJSONSuppressesBasket(t *testing.T) {
	// basket only appears on a valid reserve currency
	s := newTestCurrencyState()
	s.Flags = StateValid

	b, err := json.Marshal(s.ToJSON())
	require.NoError(t, err)
	assert.NotContains(t, string(b), "reservecurrencies")

	s.Flags = StateReserve
	b, err = json.Marshal(s.ToJSON())
	require.NoError(t, err)
	assert.NotContains(t, string(b), "reservecurrencies")
}

func TestCurrencyStateShortArraysReadZero(t *testing.T) {
	s := newTestCurrencyState()
	s.Currencies = append(s.Currencies, cvmTestID(0x33))

	got := s.ToJSON()
	require.Len(t, got.ReserveCurrencies, 3)
	assert.Equal(t, Amount(0), got.ReserveCurrencies[2].Weight)
	assert.Equal(t, Amount(0), got.ReserveCurrencies[2].Reserves)
}

func TestPriceInReserveInjection(t *testing.T) {
	orig := PriceInReserve
	defer func() { PriceInReserve = orig }()

	PriceInReserve = func(s *CurrencyState, i int) Amount {
		return Amount((i + 1) * SatoshisPerCoin)
	}

	got := newTestCurrencyState().ToJSON()
	assert.Equal(t, Amount(SatoshisPerCoin), got.ReserveCurrencies[0].PriceInReserve)
	assert.Equal(t, Amount(2*SatoshisPerCoin), got.ReserveCurrencies[1].PriceInReserve)
}

func newTestCoinbaseCurrencyState() *CoinbaseCurrencyState {
	return &CoinbaseCurrencyState{
		CurrencyState: *newTestCurrencyState(),
		ReserveIn:     []Amount{1, 2},
		NativeIn:      []Amount{3, 4},
		ReserveOut:    []Amount{5, 6},
		ConversionPrice: []Amount{
			100000000,
			200000000,
		},
		Fees:                 []Amount{7, 8},
		ConversionFees:       []Amount{9, 10},
		NativeFees:           11,
		NativeConversionFees: 12,
	}
}

func TestCoinbaseCurrencyStateBytesRoundTrip(t *testing.T) {
	s := newTestCoinbaseCurrencyState()

	decoded, err := NewCoinbaseCurrencyStateFromBytes(s.Bytes())
	require.NoError(t, err)
	assert.Equal(t, s, decoded)
}

func TestCoinbaseCurrencyStateFromBytesTruncated(t *testing.T) {
	b := newTestCoinbaseCurrencyState().Bytes()

	_, err := NewCoinbaseCurrencyStateFromBytes(b[:len(b)-1])
	require.Error(t, err)
}

func TestCoinbaseCurrencyStateFlowTable(t *testing.T) {
	s := newTestCoinbaseCurrencyState()

	b, err := json.Marshal(s.ToJSON())
	require.NoError(t, err)

	var got map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, "11", string(got["nativefees"]))
	assert.Equal(t, "12", string(got["nativeconversionfees"]))

	var table map[string]map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(got["currencies"], &table))

	first := table[keyio.EncodeID(cvmTestID(0x11))]
	require.NotNil(t, first)
	assert.Equal(t, "0.00000001", string(first["reservein"]))
	assert.Equal(t, "0.00000003", string(first["nativein"]))
	assert.Equal(t, "0.00000005", string(first["reserveout"]))
	assert.Equal(t, "1.00000000", string(first["lastconversionprice"]))
	assert.Equal(t, "0.00000007", string(first["fees"]))
	assert.Equal(t, "0.00000009", string(first["conversionfees"]))

	// rows are emitted in basket order
	keyA := fmt.Sprintf("%q", keyio.EncodeID(cvmTestID(0x11)))
	keyB := fmt.Sprintf("%q", keyio.EncodeID(cvmTestID(0x22)))
	raw := string(got["currencies"])
	assert.Less(t, strings.Index(raw, keyA), strings.Index(raw, keyB))
}

func TestCoinbaseCurrencyStateShortFlowArrays(t *testing.T) {
	s := newTestCoinbaseCurrencyState()
	s.Currencies = append(s.Currencies, cvmTestID(0x33))

	got := s.ToJSON()

	b, err := json.Marshal(got.Currencies)
	require.NoError(t, err)

	var table map[string]map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &table))

	third := table[keyio.EncodeID(cvmTestID(0x33))]
	require.NotNil(t, third)
	assert.Equal(t, "0.00000000", string(third["reservein"]))
	assert.Equal(t, "0.00000000", string(third["lastconversionprice"]))
}
