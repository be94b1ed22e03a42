package model

import (
	"encoding/hex"

	"github.com/libsv/go-bt/v2"
	"github.com/libsv/go-p2p/chaincfg/chainhash"

	"github.com/josephnicholas/VerusCoin/script"
)

// ScriptSigJSON renders an unlocking script. The assembly attempts sighash
// decoding since signatures only ever appear on the spending side.
type ScriptSigJSON struct {
	Asm string `json:"asm"`
	Hex string `json:"hex"`
}

type VinJSON struct {
	Coinbase  string         `json:"coinbase,omitempty"`
	Txid      string         `json:"txid,omitempty"`
	Vout      *uint32        `json:"vout,omitempty"`
	ScriptSig *ScriptSigJSON `json:"scriptSig,omitempty"`
	Sequence  uint32         `json:"sequence"`
}

type VoutJSON struct {
	Value        Amount           `json:"value"`
	N            uint32           `json:"n"`
	ScriptPubKey ScriptPubKeyJSON `json:"scriptPubKey"`
}

type TxJSON struct {
	Txid      string     `json:"txid"`
	Version   uint32     `json:"version"`
	LockTime  uint32     `json:"locktime"`
	Vin       []VinJSON  `json:"vin"`
	Vout      []VoutJSON `json:"vout"`
	BlockHash string     `json:"blockhash,omitempty"`
	Hex       string     `json:"hex"`
}

// TxToJSON projects a transaction. blockHash is optional and names the block
// the transaction was found in.
func TxToJSON(tx *bt.Tx, blockHash *chainhash.Hash) TxJSON {
	out := TxJSON{
		Txid:     tx.TxID(),
		Version:  tx.Version,
		LockTime: tx.LockTime,
		Vin:      make([]VinJSON, 0, len(tx.Inputs)),
		Vout:     make([]VoutJSON, 0, len(tx.Outputs)),
		Hex:      tx.String(),
	}

	coinbase := tx.IsCoinbase()

	for _, in := range tx.Inputs {
		vin := VinJSON{Sequence: in.SequenceNumber}

		var unlocking []byte
		if in.UnlockingScript != nil {
			unlocking = *in.UnlockingScript
		}

		if coinbase {
			vin.Coinbase = hex.EncodeToString(unlocking)
		} else {
			vout := in.PreviousTxOutIndex
			vin.Txid = in.PreviousTxIDStr()
			vin.Vout = &vout
			vin.ScriptSig = &ScriptSigJSON{
				Asm: script.Script(unlocking).ToASM(true),
				Hex: hex.EncodeToString(unlocking),
			}
		}

		out.Vin = append(out.Vin, vin)
	}

	for n, o := range tx.Outputs {
		var locking []byte
		if o.LockingScript != nil {
			locking = *o.LockingScript
		}

		out.Vout = append(out.Vout, VoutJSON{
			Value:        Amount(o.Satoshis),
			N:            uint32(n),
			ScriptPubKey: ScriptPubKeyToJSON(script.Script(locking), true, true),
		})
	}

	if blockHash != nil {
		out.BlockHash = blockHash.String()
	}

	return out
}

// EncodeHexTx returns the raw transaction serialization as a hex string.
func EncodeHexTx(tx *bt.Tx) string {
	return tx.String()
}
