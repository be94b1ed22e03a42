package script

import (
	"testing"

	"github.com/libsv/go-bt/v2/bscript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephnicholas/VerusCoin/keyio"
)

func TestExtractDestinationsPubKeyHash(t *testing.T) {
	id := testID(0x11)

	s := Script{bscript.OpDUP, bscript.OpHASH160, 20}
	s = append(s, id.Bytes()...)
	s = append(s, bscript.OpEQUALVERIFY, bscript.OpCHECKSIG)

	typ, dests, reqSigs := s.ExtractDestinations()
	assert.Equal(t, TypePubKeyHash, typ)
	assert.Equal(t, 1, reqSigs)
	require.Len(t, dests, 1)
	assert.Equal(t, keyio.DestPubKeyHash, dests[0].Type)
	assert.Equal(t, id.Bytes(), dests[0].Data)
}

func TestExtractDestinationsScriptHash(t *testing.T) {
	id := testID(0x22)

	s := Script{bscript.OpHASH160, 20}
	s = append(s, id.Bytes()...)
	s = append(s, bscript.OpEQUAL)

	typ, dests, reqSigs := s.ExtractDestinations()
	assert.Equal(t, TypeScriptHash, typ)
	assert.Equal(t, 1, reqSigs)
	require.Len(t, dests, 1)
	assert.Equal(t, keyio.DestScriptHash, dests[0].Type)
}

func TestExtractDestinationsCryptoCondition(t *testing.T) {
	params := &CondParams{
		Version:      CondVersionV2,
		EvalCode:     0x0e,
		M:            2,
		N:            3,
		Destinations: []keyio.ID{testID(0x11), testID(0x22), testID(0x33)},
	}

	s, err := PayToCondition(params)
	require.NoError(t, err)

	typ, dests, reqSigs := s.ExtractDestinations()
	assert.Equal(t, TypeCryptoCondition, typ)
	assert.Equal(t, 2, reqSigs)
	require.Len(t, dests, 3)
	for i, d := range dests {
		assert.Equal(t, keyio.DestID, d.Type)
		assert.Equal(t, params.Destinations[i].Bytes(), d.Data)
	}
}

func TestExtractDestinationsNullData(t *testing.T) {
	s := Script{bscript.OpRETURN, 0x04, 0xde, 0xad, 0xbe, 0xef}

	typ, dests, reqSigs := s.ExtractDestinations()
	assert.Equal(t, TypeNullData, typ)
	assert.Empty(t, dests)
	assert.Zero(t, reqSigs)
}

func TestExtractDestinationsNonStandard(t *testing.T) {
	s := Script{bscript.OpADD}

	typ, dests, reqSigs := s.ExtractDestinations()
	assert.Equal(t, TypeNonStandard, typ)
	assert.Empty(t, dests)
	assert.Zero(t, reqSigs)
}
