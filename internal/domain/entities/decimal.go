package entities

import (
	"bytes"
	"encoding/json"
)

// Decimal is a JSON field that accepts either a number or a string and
// preserves the textual form, so monetary values and GPAs never pass
// through a float. Set records that the key appeared in the payload at
// all; a JSON null yields Set == true with Valid == false, which is how
// partial updates distinguish "clear this field" from "leave it alone".
type Decimal struct {
	Value string
	Valid bool
	Set   bool
}

// DecimalFrom creates a valid, present Decimal
func DecimalFrom(value string) Decimal {
	return Decimal{Value: value, Valid: true, Set: true}
}

// DecimalNull creates a present-but-null Decimal, as produced by an
// explicit JSON null.
func DecimalNull() Decimal {
	return Decimal{Set: true}
}

func (d *Decimal) UnmarshalJSON(data []byte) error {
	d.Set = true
	if bytes.Equal(data, []byte("null")) {
		d.Value = ""
		d.Valid = false
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		d.Value = n.String()
		d.Valid = true
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	d.Value = s
	d.Valid = true
	return nil
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(d.Value)
}
