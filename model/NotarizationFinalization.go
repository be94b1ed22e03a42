package model

import "bytes"

// NotarizationFinalization marks a notarization as confirmed by pointing at
// the input that commits to it.
type NotarizationFinalization struct {
	Version        int32
	ConfirmedInput int32
}

func NewNotarizationFinalizationFromBytes(b []byte) (*NotarizationFinalization, error) {
	r := bytes.NewReader(b)
	f := &NotarizationFinalization{}

	var err error
	if f.Version, err = readInt32(r); err != nil {
		return nil, err
	}
	if f.ConfirmedInput, err = readInt32(r); err != nil {
		return nil, err
	}

	return f, nil
}

func (f *NotarizationFinalization) Bytes() []byte {
	buf := bytes.NewBuffer(nil)
	writeInt32(buf, f.Version)
	writeInt32(buf, f.ConfirmedInput)
	return buf.Bytes()
}

type NotarizationFinalizationJSON struct {
	Version        int32 `json:"version"`
	ConfirmedInput int32 `json:"confirmedinput"`
}

func (f *NotarizationFinalization) ToJSON() NotarizationFinalizationJSON {
	return NotarizationFinalizationJSON{
		Version:        f.Version,
		ConfirmedInput: f.ConfirmedInput,
	}
}
