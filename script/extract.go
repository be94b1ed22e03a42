package script

import (
	"github.com/libsv/go-bt/v2/bscript"

	"github.com/josephnicholas/VerusCoin/keyio"
)

// Script spendability classes reported by ExtractDestinations.
const (
	TypeNonStandard     = "nonstandard"
	TypePubKeyHash      = "pubkeyhash"
	TypeScriptHash      = "scripthash"
	TypeCryptoCondition = "cryptocondition"
	TypeNullData        = "nulldata"
)

// ExtractDestinations classifies the script's spendability pattern and
// returns the destinations that can satisfy it together with the number of
// required signatures. Non-standard scripts report no destinations.
func (s Script) ExtractDestinations() (string, []keyio.Destination, int) {
	if params, ok := s.IsPayToCondition(); ok {
		dests := make([]keyio.Destination, 0, len(params.Destinations))
		for _, id := range params.Destinations {
			dests = append(dests, keyio.IDDestination(id))
		}
		return TypeCryptoCondition, dests, int(params.M)
	}

	if id, ok := s.isPayToPubKeyHash(); ok {
		return TypePubKeyHash, []keyio.Destination{{Type: keyio.DestPubKeyHash, Data: id}}, 1
	}

	if id, ok := s.isPayToScriptHash(); ok {
		return TypeScriptHash, []keyio.Destination{{Type: keyio.DestScriptHash, Data: id}}, 1
	}

	if s.IsUnspendable() {
		return TypeNullData, nil, 0
	}

	return TypeNonStandard, nil, 0
}

// isPayToPubKeyHash matches OP_DUP OP_HASH160 <20 bytes> OP_EQUALVERIFY OP_CHECKSIG.
func (s Script) isPayToPubKeyHash() ([]byte, bool) {
	if len(s) == 25 &&
		s[0] == bscript.OpDUP &&
		s[1] == bscript.OpHASH160 &&
		s[2] == keyio.IDLen &&
		s[23] == bscript.OpEQUALVERIFY &&
		s[24] == bscript.OpCHECKSIG {
		return s[3:23], true
	}
	return nil, false
}

// isPayToScriptHash matches OP_HASH160 <20 bytes> OP_EQUAL.
func (s Script) isPayToScriptHash() ([]byte, bool) {
	if len(s) == 23 &&
		s[0] == bscript.OpHASH160 &&
		s[1] == keyio.IDLen &&
		s[22] == bscript.OpEQUAL {
		return s[2:22], true
	}
	return nil, false
}
