// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Price is a plan's total price. Older clients submitted prices as JSON
// strings (straight from a text input), so it unmarshals from either a
// number or a numeric string. Anything non-numeric decodes to NaN and is
// rejected later by plan validation, not by the JSON decoder.
type Price float64

func (p *Price) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))

	if s == "null" {
		*p = Price(math.NaN())
		return nil
	}

	// Quoted string form: "300"
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			*p = Price(math.NaN())
			return nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			*p = Price(math.NaN())
			return nil
		}
		*p = Price(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		*p = Price(math.NaN())
		return nil
	}
	*p = Price(f)
	return nil
}

func (p Price) MarshalJSON() ([]byte, error) {
	f := float64(p)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		// Never valid past validation, but keep marshaling total.
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(f, 'f', -1, 64)), nil
}

// IsFinite reports whether the price is a real number (not NaN or Inf).
func (p Price) IsFinite() bool {
	f := float64(p)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
