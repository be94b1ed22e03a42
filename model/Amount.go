package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/josephnicholas/VerusCoin/errors"
)

// SatoshisPerCoin is the fixed-point scale of every monetary amount: signed
// 64-bit integers in units of 1e-8.
const SatoshisPerCoin = 100_000_000

// Amount is a monetary value in satoshi units. Its JSON form is the
// canonical fixed 8-decimal-place rendering, which is part of the
// cross-system interchange contract and must be bit-exact.
type Amount int64

// String renders the amount as ["-"]<integer>.<8-digit zero-padded fraction>.
func (a Amount) String() string {
	sign := ""
	n := int64(a)
	if n < 0 {
		sign = "-"
		n = -n
	}
	return fmt.Sprintf("%s%d.%08d", sign, n/SatoshisPerCoin, n%SatoshisPerCoin)
}

// MarshalJSON emits the canonical rendering as a JSON number literal.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON accepts either a JSON number or a decimal string.
func (a *Amount) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)

	v, err := AmountFromString(s)
	if err != nil {
		return err
	}

	*a = v
	return nil
}

// AmountFromString parses a decimal rendering back into satoshi units. At
// most 8 fractional digits are accepted; anything else is malformed.
func AmountFromString(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.NewInvalidArgumentError("empty amount")
	}

	negative := false
	if s[0] == '-' {
		negative = true
		s = s[1:]
	} else if s[0] == '+' {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}

	if intPart == "" && fracPart == "" {
		return 0, errors.NewInvalidArgumentError("malformed amount %q", s)
	}
	if len(fracPart) > 8 {
		return 0, errors.NewInvalidArgumentError("amount %q has more than 8 decimal places", s)
	}
	if intPart == "" {
		intPart = "0"
	}

	whole, err := strconv.ParseUint(intPart, 10, 64)
	if err != nil {
		return 0, errors.NewInvalidArgumentError("malformed amount %q", s, err)
	}

	frac := uint64(0)
	if fracPart != "" {
		frac, err = strconv.ParseUint(fracPart, 10, 64)
		if err != nil {
			return 0, errors.NewInvalidArgumentError("malformed amount %q", s, err)
		}
		for i := len(fracPart); i < 8; i++ {
			frac *= 10
		}
	}

	n := whole*SatoshisPerCoin + frac
	if n > 1<<62 {
		return 0, errors.NewInvalidArgumentError("amount %q out of range", s)
	}

	if negative {
		return Amount(-int64(n)), nil
	}
	return Amount(n), nil
}

// amountAt is the bounds-checked accessor for parallel amount arrays:
// reads past the end default to zero instead of faulting because shorter
// arrays are legal on the wire.
func amountAt(v []Amount, i int) Amount {
	if i < 0 || i >= len(v) {
		return 0
	}
	return v[i]
}

func int64At(v []int64, i int) int64 {
	if i < 0 || i >= len(v) {
		return 0
	}
	return v[i]
}

func int32At(v []int32, i int) int32 {
	if i < 0 || i >= len(v) {
		return 0
	}
	return v[i]
}
