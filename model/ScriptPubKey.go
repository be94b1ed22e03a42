package model

import (
	"encoding/json"

	"github.com/josephnicholas/VerusCoin/keyio"
	"github.com/josephnicholas/VerusCoin/script"
)

// ScriptPubKeyJSON is the projection of an output script: its spendability
// class, the typed record embedded in a pay-to-condition output (exactly one
// of the record fields is set, possibly to the "invalid" or "unknown"
// marker), the destinations that can spend it, and on request the assembly
// and hex renderings.
type ScriptPubKeyJSON struct {
	Type                string          `json:"type"`
	CurrencyDefinition  json.RawMessage `json:"currencydefinition,omitempty"`
	ServiceReward       json.RawMessage `json:"pbaasServiceReward,omitempty"`
	Notarization        json.RawMessage `json:"pbaasNotarization,omitempty"`
	Finalization        json.RawMessage `json:"pbaasFinalization,omitempty"`
	CurrencyState       json.RawMessage `json:"currencystate,omitempty"`
	ReserveTransfer     json.RawMessage `json:"reservetransfer,omitempty"`
	ReserveOutput       json.RawMessage `json:"reserveoutput,omitempty"`
	ReserveExchange     json.RawMessage `json:"reserveexchange,omitempty"`
	ReserveDeposit      json.RawMessage `json:"reservedeposit,omitempty"`
	CrossChainExport    json.RawMessage `json:"crosschainexport,omitempty"`
	CrossChainImport    json.RawMessage `json:"crosschainimport,omitempty"`
	IdentityPrimary     json.RawMessage `json:"identityprimary,omitempty"`
	IdentityRevoke      json.RawMessage `json:"identityrevoke,omitempty"`
	IdentityRecover     json.RawMessage `json:"identityrecover,omitempty"`
	IdentityCommitment  json.RawMessage `json:"identitycommitment,omitempty"`
	IdentityReservation json.RawMessage `json:"identityreservation,omitempty"`
	StakeGuard          json.RawMessage `json:"stakeguard,omitempty"`
	IdentityExport      json.RawMessage `json:"identityexport,omitempty"`
	Unknown             json.RawMessage `json:"unknown,omitempty"`
	ReqSigs             int             `json:"reqSigs,omitempty"`
	Addresses           []string        `json:"addresses,omitempty"`
	Asm                 string          `json:"asm,omitempty"`
	Hex                 string          `json:"hex,omitempty"`
}

// ScriptPubKeyToJSON projects an output script. Payload bytes originate from
// untrusted transaction data, so every decode failure degrades to a marker
// in the output instead of an error.
func ScriptPubKeyToJSON(s script.Script, includeHex, includeAsm bool) ScriptPubKeyJSON {
	scriptType, destinations, reqSigs := s.ExtractDestinations()

	out := ScriptPubKeyJSON{Type: scriptType}

	if params, ok := s.IsPayToCondition(); ok && params.Version >= script.CondVersionV2 {
		dispatchCondPayload(&out, params)
	}

	if len(destinations) > 0 {
		out.ReqSigs = reqSigs
		for _, d := range destinations {
			out.Addresses = append(out.Addresses, keyio.EncodeDestination(d))
		}
	}

	if includeAsm {
		out.Asm = s.ToASM(false)
	}
	if includeHex {
		out.Hex = s.String()
	}

	return out
}

// dispatchCondPayload selects the record decoder for the evaluation code and
// stores the projection, the "invalid" marker when the payload is missing or
// fails its own validity check, or the "unknown" marker for codes outside
// the table.
func dispatchCondPayload(out *ScriptPubKeyJSON, params *script.CondParams) {
	var payload []byte
	if len(params.Data) > 0 {
		payload = params.Data[0]
	}

	switch params.EvalCode {
	case EvalCurrencyDefinition:
		out.CurrencyDefinition = jsonInvalid
		if payload != nil {
			if d, err := NewCurrencyDefinitionFromBytes(payload); err == nil && d.IsValid() {
				out.CurrencyDefinition = mustJSON(d.ToJSON())
			}
		}

	case EvalServiceReward:
		out.ServiceReward = jsonInvalid
		if payload != nil {
			if s, err := NewServiceRewardFromBytes(payload); err == nil && s.IsValid() {
				out.ServiceReward = mustJSON(s.ToJSON())
			}
		}

	case EvalEarnedNotarization, EvalAcceptedNotarization:
		out.Notarization = jsonInvalid
		if payload != nil {
			if n, err := NewNotarizationFromBytes(payload); err == nil && n.IsValid() {
				out.Notarization = mustJSON(n.ToJSON())
			}
		}

	case EvalFinalizeNotarization:
		// finalizations carry no validity predicate; only a missing payload
		// suppresses the projection
		if payload != nil {
			if f, err := NewNotarizationFinalizationFromBytes(payload); err == nil {
				out.Finalization = mustJSON(f.ToJSON())
			}
		}

	case EvalCurrencyState:
		out.CurrencyState = jsonInvalid
		if payload != nil {
			if s, err := NewCoinbaseCurrencyStateFromBytes(payload); err == nil && s.IsValid() {
				out.CurrencyState = mustJSON(s.ToJSON())
			}
		}

	case EvalReserveTransfer:
		out.ReserveTransfer = jsonInvalid
		if payload != nil {
			if rt, err := NewReserveTransferFromBytes(payload); err == nil && rt.IsValid() {
				out.ReserveTransfer = mustJSON(rt.ToJSON())
			}
		}

	case EvalReserveOutput:
		out.ReserveOutput = jsonInvalid
		if payload != nil {
			if t, err := NewTokenOutputFromBytes(payload); err == nil && t.IsValid() {
				out.ReserveOutput = mustJSON(t.ToJSON())
			}
		}

	case EvalReserveExchange:
		out.ReserveExchange = jsonInvalid
		if payload != nil {
			if re, err := NewReserveExchangeFromBytes(payload); err == nil && re.IsValid() {
				out.ReserveExchange = mustJSON(re.ToJSON())
			}
		}

	case EvalReserveDeposit:
		out.ReserveDeposit = jsonInvalid
		if payload != nil {
			if t, err := NewTokenOutputFromBytes(payload); err == nil && t.IsValid() {
				out.ReserveDeposit = mustJSON(t.ToJSON())
			}
		}

	case EvalCrossChainExport:
		out.CrossChainExport = jsonInvalid
		if payload != nil {
			if e, err := NewCrossChainExportFromBytes(payload); err == nil && e.IsValid() {
				out.CrossChainExport = mustJSON(e.ToJSON())
			}
		}

	case EvalCrossChainImport:
		out.CrossChainImport = jsonInvalid
		if payload != nil {
			if im, err := NewCrossChainImportFromBytes(payload); err == nil && im.IsValid() {
				out.CrossChainImport = mustJSON(im.ToJSON())
			}
		}

	case EvalIdentityPrimary:
		out.IdentityPrimary = jsonInvalid
		if payload != nil {
			if id, err := NewIdentityFromBytes(payload); err == nil && id.IsValid() {
				out.IdentityPrimary = mustJSON(id.ToJSON())
			}
		}

	case EvalIdentityRevoke:
		out.IdentityRevoke = jsonEmpty

	case EvalIdentityRecover:
		out.IdentityRecover = jsonEmpty

	case EvalIdentityCommitment:
		out.IdentityCommitment = jsonEmpty

	case EvalIdentityReservation:
		out.IdentityReservation = jsonEmpty

	case EvalStakeGuard:
		out.StakeGuard = jsonEmpty

	case EvalIdentityExport:
		out.IdentityExport = jsonInvalid
		if payload != nil {
			if e, err := NewIdentityExportFromBytes(payload); err == nil && e.IsValid() {
				out.IdentityExport = mustJSON(e.ToJSON())
			}
		}

	default:
		out.Unknown = jsonEmpty
	}
}
