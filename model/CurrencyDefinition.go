package model

import (
	"bytes"
	"encoding/json"

	"github.com/josephnicholas/VerusCoin/errors"
	"github.com/josephnicholas/VerusCoin/keyio"
)

// CurrencyDefinitionVersionCurrent is the only definition version emitted.
const CurrencyDefinitionVersionCurrent = 1

// maxCurrencyNameLen bounds currency names on the wire.
const maxCurrencyNameLen = 64

// PreAllocation assigns launch-time value to a recipient identity. The nil
// recipient is the block-one-miner sentinel.
type PreAllocation struct {
	Recipient keyio.ID
	Amount    Amount
}

// CurrencyDefinition is the immutable-once-issued description of a currency:
// naming and lineage, notarization parameters, the reserve basket, launch
// pre-conversion bounds and pre-allocations, and the emission-era schedule.
// The era arrays are parallel per index; unequal lengths are legal and
// out-of-range reads default to zero.
type CurrencyDefinition struct {
	Version              int32
	Options              int32
	Name                 string
	Parent               keyio.ID
	SystemID             keyio.ID
	NotarizationProtocol int32
	ProofProtocol        int32
	IDRegistrationAmount int64
	IDReferralLevels     int32
	Notaries             []keyio.ID
	MinNotariesConfirm   int32
	BillingPeriod        int32
	NotarizationReward   int64
	StartBlock           uint32
	EndBlock             uint32
	Currencies           []keyio.ID
	Weights              []Amount
	Conversions          []Amount
	MinPreconvert        []Amount
	MaxPreconvert        []Amount
	PreAllocationRatio   Amount
	PreAllocation        []PreAllocation
	Contributions        []Amount
	Preconverted         []Amount
	Rewards              []int64
	RewardsDecay         []int64
	Halving              []int32
	EraEnd               []int32
}

func NewCurrencyDefinitionFromBytes(b []byte) (*CurrencyDefinition, error) {
	r := bytes.NewReader(b)
	d := &CurrencyDefinition{}

	var err error
	if d.Version, err = readInt32(r); err != nil {
		return nil, err
	}
	if d.Options, err = readInt32(r); err != nil {
		return nil, err
	}
	if d.Name, err = readString(r); err != nil {
		return nil, err
	}
	if len(d.Name) > maxCurrencyNameLen {
		return nil, errors.NewPayloadInvalidError("currency name too long")
	}
	if d.Parent, err = readID(r); err != nil {
		return nil, err
	}
	if d.SystemID, err = readID(r); err != nil {
		return nil, err
	}
	if d.NotarizationProtocol, err = readInt32(r); err != nil {
		return nil, err
	}
	if d.ProofProtocol, err = readInt32(r); err != nil {
		return nil, err
	}
	if d.IDRegistrationAmount, err = readInt64(r); err != nil {
		return nil, err
	}
	if d.IDReferralLevels, err = readInt32(r); err != nil {
		return nil, err
	}
	if d.Notaries, err = readIDs(r); err != nil {
		return nil, err
	}
	if d.MinNotariesConfirm, err = readInt32(r); err != nil {
		return nil, err
	}
	if d.BillingPeriod, err = readInt32(r); err != nil {
		return nil, err
	}
	if d.NotarizationReward, err = readInt64(r); err != nil {
		return nil, err
	}
	if d.StartBlock, err = readUint32(r); err != nil {
		return nil, err
	}
	if d.EndBlock, err = readUint32(r); err != nil {
		return nil, err
	}
	if d.Currencies, err = readIDs(r); err != nil {
		return nil, err
	}
	if d.Weights, err = readAmounts(r); err != nil {
		return nil, err
	}
	if d.Conversions, err = readAmounts(r); err != nil {
		return nil, err
	}
	if d.MinPreconvert, err = readAmounts(r); err != nil {
		return nil, err
	}
	if d.MaxPreconvert, err = readAmounts(r); err != nil {
		return nil, err
	}
	if d.PreAllocationRatio, err = readAmount(r); err != nil {
		return nil, err
	}

	n, err := readVarInt(r)
	if err != nil {
		return nil, err
	}
	if n > maxVectorAllocation {
		return nil, errors.NewProcessingError("preallocation vector length %d too large", n)
	}
	for i := uint64(0); i < n; i++ {
		var p PreAllocation
		if p.Recipient, err = readID(r); err != nil {
			return nil, err
		}
		if p.Amount, err = readAmount(r); err != nil {
			return nil, err
		}
		d.PreAllocation = append(d.PreAllocation, p)
	}

	if d.Contributions, err = readAmounts(r); err != nil {
		return nil, err
	}
	if d.Preconverted, err = readAmounts(r); err != nil {
		return nil, err
	}
	if d.Rewards, err = readInt64s(r); err != nil {
		return nil, err
	}
	if d.RewardsDecay, err = readInt64s(r); err != nil {
		return nil, err
	}
	if d.Halving, err = readInt32s(r); err != nil {
		return nil, err
	}
	if d.EraEnd, err = readInt32s(r); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *CurrencyDefinition) Bytes() []byte {
	buf := bytes.NewBuffer(nil)
	writeInt32(buf, d.Version)
	writeInt32(buf, d.Options)
	writeString(buf, d.Name)
	writeID(buf, d.Parent)
	writeID(buf, d.SystemID)
	writeInt32(buf, d.NotarizationProtocol)
	writeInt32(buf, d.ProofProtocol)
	writeInt64(buf, d.IDRegistrationAmount)
	writeInt32(buf, d.IDReferralLevels)
	writeIDs(buf, d.Notaries)
	writeInt32(buf, d.MinNotariesConfirm)
	writeInt32(buf, d.BillingPeriod)
	writeInt64(buf, d.NotarizationReward)
	writeUint32(buf, d.StartBlock)
	writeUint32(buf, d.EndBlock)
	writeIDs(buf, d.Currencies)
	writeAmounts(buf, d.Weights)
	writeAmounts(buf, d.Conversions)
	writeAmounts(buf, d.MinPreconvert)
	writeAmounts(buf, d.MaxPreconvert)
	writeAmount(buf, d.PreAllocationRatio)

	writeVarInt(buf, uint64(len(d.PreAllocation)))
	for _, p := range d.PreAllocation {
		writeID(buf, p.Recipient)
		writeAmount(buf, p.Amount)
	}

	writeAmounts(buf, d.Contributions)
	writeAmounts(buf, d.Preconverted)
	writeInt64s(buf, d.Rewards)
	writeInt64s(buf, d.RewardsDecay)
	writeInt32s(buf, d.Halving)
	writeInt32s(buf, d.EraEnd)
	return buf.Bytes()
}

// IsValid rejects the empty definition: a currency must carry a name and a
// supported version. The basket arrays must be index-aligned where present.
func (d *CurrencyDefinition) IsValid() bool {
	if d.Name == "" || len(d.Name) > maxCurrencyNameLen {
		return false
	}
	if d.Version < 1 || d.Version > CurrencyDefinitionVersionCurrent {
		return false
	}
	if len(d.Weights) > 0 && len(d.Weights) != len(d.Currencies) {
		return false
	}
	if len(d.Conversions) > 0 && len(d.Conversions) != len(d.Currencies) {
		return false
	}
	return true
}

// GetID derives the currency's identifier from its name and parent.
func (d *CurrencyDefinition) GetID() keyio.ID {
	return keyio.IdentityID(d.Name, d.Parent)
}

// EraJSON is one emission era assembled from the parallel schedule arrays.
type EraJSON struct {
	Reward  int64 `json:"reward"`
	Decay   int64 `json:"decay"`
	Halving int32 `json:"halving"`
	EraEnd  int32 `json:"eraend"`
}

// PreAllocationJSON marshals as a single-pair object keyed by the recipient.
type PreAllocationJSON struct {
	Recipient string
	Amount    Amount
}

func (p PreAllocationJSON) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	key, err := json.Marshal(p.Recipient)
	if err != nil {
		return nil, err
	}
	buf.Write(key)
	buf.WriteByte(':')
	buf.WriteString(p.Amount.String())

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type CurrencyDefinitionJSON struct {
	Name                 string              `json:"name"`
	Version              int64               `json:"version"`
	Options              int64               `json:"options"`
	Parent               string              `json:"parent"`
	SystemID             string              `json:"systemid"`
	CurrencyID           string              `json:"currencyid"`
	NotarizationProtocol int32               `json:"notarizationprotocol"`
	ProofProtocol        int32               `json:"proofprotocol"`
	IDRegistrationPrice  int64               `json:"idregistrationprice"`
	IDReferralLevels     int32               `json:"idreferrallevels"`
	Notaries             []string            `json:"notaries,omitempty"`
	MinNotariesConfirm   int32               `json:"minnotariesconfirm"`
	BillingPeriod        int32               `json:"billingperiod"`
	NotarizationReward   int64               `json:"notarizationreward"`
	StartBlock           int64               `json:"startblock"`
	EndBlock             int64               `json:"endblock"`
	Currencies           []string            `json:"currencies,omitempty"`
	Weights              []Amount            `json:"weights,omitempty"`
	Conversions          []Amount            `json:"conversions,omitempty"`
	MinPreconversion     []Amount            `json:"minpreconversion,omitempty"`
	MaxPreconversion     []Amount            `json:"maxpreconversion,omitempty"`
	PreAllocationRatio   Amount              `json:"preallocationratio,omitempty"`
	PreAllocation        []PreAllocationJSON `json:"preallocation,omitempty"`
	InitialContributions []Amount            `json:"initialcontributions,omitempty"`
	Preconversions       []Amount            `json:"preconversions,omitempty"`
	Eras                 []EraJSON           `json:"eras"`
}

func (d *CurrencyDefinition) ToJSON() CurrencyDefinitionJSON {
	ret := CurrencyDefinitionJSON{
		Name:                 d.Name,
		Version:              int64(d.Version),
		Options:              int64(d.Options),
		Parent:               keyio.EncodeID(d.Parent),
		SystemID:             keyio.EncodeID(d.SystemID),
		CurrencyID:           keyio.EncodeID(d.GetID()),
		NotarizationProtocol: d.NotarizationProtocol,
		ProofProtocol:        d.ProofProtocol,
		IDRegistrationPrice:  d.IDRegistrationAmount,
		IDReferralLevels:     d.IDReferralLevels,
		MinNotariesConfirm:   d.MinNotariesConfirm,
		BillingPeriod:        d.BillingPeriod,
		NotarizationReward:   d.NotarizationReward,
		StartBlock:           int64(d.StartBlock),
		EndBlock:             int64(d.EndBlock),
		Weights:              d.Weights,
		Conversions:          d.Conversions,
		MinPreconversion:     d.MinPreconvert,
		MaxPreconversion:     d.MaxPreconvert,
		PreAllocationRatio:   d.PreAllocationRatio,
		InitialContributions: d.Contributions,
		Preconversions:       d.Preconverted,
	}

	for _, notary := range d.Notaries {
		ret.Notaries = append(ret.Notaries, keyio.EncodeID(notary))
	}
	for _, currency := range d.Currencies {
		ret.Currencies = append(ret.Currencies, keyio.EncodeID(currency))
	}

	for _, p := range d.PreAllocation {
		recipient := "blockoneminer"
		if !p.Recipient.IsNull() {
			recipient = keyio.EncodeID(p.Recipient)
		}
		ret.PreAllocation = append(ret.PreAllocation, PreAllocationJSON{Recipient: recipient, Amount: p.Amount})
	}

	// one era per rewards entry; the other schedule arrays default to zero
	// past their end
	ret.Eras = make([]EraJSON, 0, len(d.Rewards))
	for i := range d.Rewards {
		ret.Eras = append(ret.Eras, EraJSON{
			Reward:  int64At(d.Rewards, i),
			Decay:   int64At(d.RewardsDecay, i),
			Halving: int32At(d.Halving, i),
			EraEnd:  int32At(d.EraEnd, i),
		})
	}

	return ret
}
