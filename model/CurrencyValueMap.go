package model

import (
	"bytes"
	"encoding/json"

	"github.com/josephnicholas/VerusCoin/errors"
	"github.com/josephnicholas/VerusCoin/keyio"
)

// CurrencyValueMap is a sparse mapping from currency identifier to a signed
// amount. Keys are unique and iteration follows insertion order.
//
// Parsing from JSON is all-or-nothing: any unrecognized key, duplicate key or
// malformed amount discards the whole map. A partially-trusted value map
// could misrepresent value, so there is no partial result.
type CurrencyValueMap struct {
	keys   []keyio.ID
	values map[keyio.ID]Amount
}

func NewCurrencyValueMap() *CurrencyValueMap {
	return &CurrencyValueMap{values: make(map[keyio.ID]Amount)}
}

// Set inserts or replaces the amount for a currency. A replaced key keeps
// its original position.
func (m *CurrencyValueMap) Set(id keyio.ID, a Amount) {
	if m.values == nil {
		m.values = make(map[keyio.ID]Amount)
	}
	if _, ok := m.values[id]; !ok {
		m.keys = append(m.keys, id)
	}
	m.values[id] = a
}

func (m *CurrencyValueMap) Get(id keyio.ID) Amount {
	return m.values[id]
}

func (m *CurrencyValueMap) Has(id keyio.ID) bool {
	_, ok := m.values[id]
	return ok
}

func (m *CurrencyValueMap) Len() int {
	return len(m.keys)
}

// IDs returns the keys in insertion order.
func (m *CurrencyValueMap) IDs() []keyio.ID {
	ids := make([]keyio.ID, len(m.keys))
	copy(ids, m.keys)
	return ids
}

// Clear discards all entries.
func (m *CurrencyValueMap) Clear() {
	m.keys = nil
	m.values = make(map[keyio.ID]Amount)
}

// Equal reports whether both maps hold the same key set and amounts,
// regardless of insertion order.
func (m *CurrencyValueMap) Equal(other *CurrencyValueMap) bool {
	if m.Len() != other.Len() {
		return false
	}
	for id, a := range m.values {
		if b, ok := other.values[id]; !ok || a != b {
			return false
		}
	}
	return true
}

// Dominates reports whether every entry of other is covered component-wise
// by this map. Keys absent from this map count as zero.
func (m *CurrencyValueMap) Dominates(other *CurrencyValueMap) bool {
	for id, b := range other.values {
		if m.values[id] < b {
			return false
		}
	}
	return true
}

// MarshalJSON emits one key per entry in insertion order, each key the
// encoded identifier and each value the canonical amount rendering.
func (m *CurrencyValueMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, id := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(keyio.EncodeID(id))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(m.values[id].String())
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// NewCurrencyValueMapFromJSON parses an interchange object. Failures yield
// an empty map, never a partial one and never an error: callers treat a
// malformed map as carrying no value.
func NewCurrencyValueMapFromJSON(data []byte) *CurrencyValueMap {
	m := NewCurrencyValueMap()

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return m
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return m
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			m.Clear()
			break
		}
		key, ok := keyTok.(string)
		if !ok {
			m.Clear()
			break
		}

		id, err := keyio.DecodeID(key)
		if err != nil {
			m.Clear()
			break
		}
		if m.Has(id) {
			m.Clear()
			break
		}

		valTok, err := dec.Token()
		if err != nil {
			m.Clear()
			break
		}

		amount, err := amountFromToken(valTok)
		if err != nil {
			m.Clear()
			break
		}

		m.Set(id, amount)
	}

	return m
}

func amountFromToken(tok json.Token) (Amount, error) {
	switch v := tok.(type) {
	case json.Number:
		return AmountFromString(v.String())
	case string:
		return AmountFromString(v)
	default:
		return 0, errors.NewInvalidArgumentError("amount must be a number or string")
	}
}

// Bytes serializes the map as a varint count followed by (ID, amount) pairs.
func (m *CurrencyValueMap) Bytes() []byte {
	buf := bytes.NewBuffer(nil)
	writeVarInt(buf, uint64(len(m.keys)))
	for _, id := range m.keys {
		writeID(buf, id)
		writeAmount(buf, m.values[id])
	}
	return buf.Bytes()
}

func readCurrencyValueMap(r *bytes.Reader) (*CurrencyValueMap, error) {
	n, err := readVarInt(r)
	if err != nil {
		return nil, err
	}
	if n > maxVectorAllocation {
		return nil, errors.NewProcessingError("value map length %d too large", n)
	}

	m := NewCurrencyValueMap()
	for i := uint64(0); i < n; i++ {
		id, err := readID(r)
		if err != nil {
			return nil, err
		}
		a, err := readAmount(r)
		if err != nil {
			return nil, err
		}
		if m.Has(id) {
			return nil, errors.NewProcessingError("duplicate currency in value map")
		}
		m.Set(id, a)
	}
	return m, nil
}
