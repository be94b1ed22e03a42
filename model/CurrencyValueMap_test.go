package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephnicholas/VerusCoin/keyio"
)

func cvmTestID(b byte) keyio.ID {
	var id keyio.ID
	for i := range id {
		id[i] = b
	}
	return id
}

func TestCurrencyValueMapInsertionOrder(t *testing.T) {
	m := NewCurrencyValueMap()
	a := cvmTestID(0x03)
	b := cvmTestID(0x01)
	c := cvmTestID(0x02)

	m.Set(a, 100000000)
	m.Set(b, 250000000)
	m.Set(c, -1)

	got, err := json.Marshal(m)
	require.NoError(t, err)

	expected := fmt.Sprintf(`{%q:1.00000000,%q:2.50000000,%q:-0.00000001}`,
		keyio.EncodeID(a), keyio.EncodeID(b), keyio.EncodeID(c))
	assert.Equal(t, expected, string(got))

	// replacing a key keeps its position
	m.Set(b, 300000000)
	got, err = json.Marshal(m)
	require.NoError(t, err)

	expected = fmt.Sprintf(`{%q:1.00000000,%q:3.00000000,%q:-0.00000001}`,
		keyio.EncodeID(a), keyio.EncodeID(b), keyio.EncodeID(c))
	assert.Equal(t, expected, string(got))
}

func TestCurrencyValueMapFromJSONRoundTrip(t *testing.T) {
	m := NewCurrencyValueMap()
	m.Set(cvmTestID(0x11), 150000000)
	m.Set(cvmTestID(0x22), 7)

	encoded, err := json.Marshal(m)
	require.NoError(t, err)

	decoded := NewCurrencyValueMapFromJSON(encoded)
	assert.True(t, m.Equal(decoded))
	assert.Equal(t, m.IDs(), decoded.IDs())
}

func TestCurrencyValueMapFromJSONAllOrNothing(t *testing.T) {
	good := keyio.EncodeID(cvmTestID(0x11))

	tests := []struct {
		name string
		in   string
	}{
		{"bad key", fmt.Sprintf(`{%q:1,"notanaddress":2}`, good)},
		{"bad amount", fmt.Sprintf(`{%q:"abc"}`, good)},
		{"too many decimals", fmt.Sprintf(`{%q:1.123456789}`, good)},
		{"duplicate key", fmt.Sprintf(`{%q:1,%q:2}`, good, good)},
		{"not an object", `[1,2]`},
		{"truncated", fmt.Sprintf(`{%q:`, good)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewCurrencyValueMapFromJSON([]byte(tt.in))
			assert.Zero(t, m.Len())
		})
	}
}

func TestCurrencyValueMapBytesRoundTrip(t *testing.T) {
	m := NewCurrencyValueMap()
	m.Set(cvmTestID(0x11), 100000000)
	m.Set(cvmTestID(0x22), -5)

	decoded, err := readCurrencyValueMap(bytes.NewReader(m.Bytes()))
	require.NoError(t, err)
	assert.True(t, m.Equal(decoded))
	assert.Equal(t, m.IDs(), decoded.IDs())
}

func TestReadCurrencyValueMapRejectsDuplicate(t *testing.T) {
	id := cvmTestID(0x11)

	buf := bytes.NewBuffer(nil)
	writeVarInt(buf, 2)
	writeID(buf, id)
	writeAmount(buf, 1)
	writeID(buf, id)
	writeAmount(buf, 2)

	_, err := readCurrencyValueMap(bytes.NewReader(buf.Bytes()))
	require.Error(t, err)
}

func TestCurrencyValueMapDominates(t *testing.T) {
	a := NewCurrencyValueMap()
	a.Set(cvmTestID(0x11), 10)
	a.Set(cvmTestID(0x22), 5)

	b := NewCurrencyValueMap()
	b.Set(cvmTestID(0x11), 10)

	assert.True(t, a.Dominates(b))
	assert.False(t, b.Dominates(a))

	// absent keys count as zero
	b.Set(cvmTestID(0x33), -1)
	assert.True(t, a.Dominates(b))

	b.Set(cvmTestID(0x33), 1)
	assert.False(t, a.Dominates(b))
}
