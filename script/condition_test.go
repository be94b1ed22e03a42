package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephnicholas/VerusCoin/keyio"
)

func testID(b byte) keyio.ID {
	var id keyio.ID
	for i := range id {
		id[i] = b
	}
	return id
}

func TestPayToConditionRoundTrip(t *testing.T) {
	params := &CondParams{
		Version:      CondVersionV2,
		EvalCode:     0x0e,
		M:            1,
		N:            2,
		Destinations: []keyio.ID{testID(0x11), testID(0x22)},
		Data:         [][]byte{{0xde, 0xad, 0xbe, 0xef}},
	}

	s, err := PayToCondition(params)
	require.NoError(t, err)
	require.NotEmpty(t, s)
	assert.Equal(t, byte(OpCheckCryptoCondition), s[len(s)-1])

	decoded, ok := s.IsPayToCondition()
	require.True(t, ok)
	assert.Equal(t, params, decoded)
}

func TestPayToConditionNoPayload(t *testing.T) {
	params := &CondParams{
		Version:      CondVersionV3,
		EvalCode:     0x01,
		M:            1,
		N:            1,
		Destinations: []keyio.ID{testID(0x33)},
	}

	s, err := PayToCondition(params)
	require.NoError(t, err)

	decoded, ok := s.IsPayToCondition()
	require.True(t, ok)
	assert.Empty(t, decoded.Data)
	assert.Equal(t, params.Destinations, decoded.Destinations)
}

func TestPayToConditionRejectsInvalidParams(t *testing.T) {
	// m exceeds n
	_, err := PayToCondition(&CondParams{
		Version:      CondVersionV2,
		M:            2,
		N:            1,
		Destinations: []keyio.ID{testID(0x11)},
	})
	require.Error(t, err)

	// destination count disagrees with n
	_, err = PayToCondition(&CondParams{
		Version: CondVersionV2,
		M:       1,
		N:       2,
	})
	require.Error(t, err)

	// version out of range
	_, err = PayToCondition(&CondParams{
		Version:      4,
		M:            1,
		N:            1,
		Destinations: []keyio.ID{testID(0x11)},
	})
	require.Error(t, err)
}

func TestIsPayToConditionRejectsOtherScripts(t *testing.T) {
	p2pkh := make(Script, 25)
	p2pkh[0] = 0x76
	p2pkh[1] = 0xa9
	p2pkh[2] = 20
	p2pkh[23] = 0x88
	p2pkh[24] = 0xac

	_, ok := p2pkh.IsPayToCondition()
	assert.False(t, ok)

	_, ok = Script{}.IsPayToCondition()
	assert.False(t, ok)

	_, ok = Script{OpCheckCryptoCondition}.IsPayToCondition()
	assert.False(t, ok)
}

func TestIsPayToConditionRejectsTrailingBytes(t *testing.T) {
	params := &CondParams{
		Version:      CondVersionV2,
		EvalCode:     0x06,
		M:            1,
		N:            1,
		Destinations: []keyio.ID{testID(0x44)},
	}

	s, err := PayToCondition(params)
	require.NoError(t, err)

	_, ok := append(s, 0x00).IsPayToCondition()
	assert.False(t, ok)
}

func TestIsPayToConditionRejectsMalformedInner(t *testing.T) {
	// inner blob with a 3-byte header push
	var inner []byte
	inner = append(inner, 3, CondVersionV2, 0x06, 1)

	var s Script
	s = append(s, byte(len(inner)))
	s = append(s, inner...)
	s = append(s, OpCheckCryptoCondition)

	_, ok := s.IsPayToCondition()
	assert.False(t, ok)

	// truncated destination
	inner = nil
	inner = append(inner, 4, CondVersionV2, 0x06, 1, 1)
	inner = append(inner, 10, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)

	s = nil
	s = append(s, byte(len(inner)))
	s = append(s, inner...)
	s = append(s, OpCheckCryptoCondition)

	_, ok = s.IsPayToCondition()
	assert.False(t, ok)
}
