package model

import "bytes"

// ServiceRewardVersionCurrent is the only service-reward version emitted.
const ServiceRewardVersionCurrent = 1

// Service types rewarded by the protocol.
const (
	ServiceTypeNotarization int32 = 1
)

// ServiceReward pays out for protocol services rendered during a billing
// period, notarization being the only defined service so far.
type ServiceReward struct {
	Version       int32
	ServiceType   int32
	BillingPeriod int32
}

func NewServiceRewardFromBytes(b []byte) (*ServiceReward, error) {
	r := bytes.NewReader(b)
	s := &ServiceReward{}

	var err error
	if s.Version, err = readInt32(r); err != nil {
		return nil, err
	}
	if s.ServiceType, err = readInt32(r); err != nil {
		return nil, err
	}
	if s.BillingPeriod, err = readInt32(r); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *ServiceReward) Bytes() []byte {
	buf := bytes.NewBuffer(nil)
	writeInt32(buf, s.Version)
	writeInt32(buf, s.ServiceType)
	writeInt32(buf, s.BillingPeriod)
	return buf.Bytes()
}

func (s *ServiceReward) IsValid() bool {
	return s.Version >= 1 && s.Version <= ServiceRewardVersionCurrent && s.ServiceType != 0
}

type ServiceRewardJSON struct {
	Version       int32 `json:"version"`
	ServiceType   int32 `json:"servicetype"`
	BillingPeriod int32 `json:"billingperiod"`
}

func (s *ServiceReward) ToJSON() ServiceRewardJSON {
	return ServiceRewardJSON{
		Version:       s.Version,
		ServiceType:   s.ServiceType,
		BillingPeriod: s.BillingPeriod,
	}
}
