package entities

import (
	"bytes"
	"encoding/json"

	"github.com/volatiletech/null/v8"
)

// StringPatch is a tri-state string field for partial updates. Pointer
// fields cannot express the difference between an absent key and an
// explicit null: encoding/json nils the pointer in both cases before any
// custom unmarshaler runs. A value field gets its UnmarshalJSON invoked
// on explicit null, so the zero value means "absent", Set without Valid
// means "clear", and Set with Valid carries a replacement.
type StringPatch struct {
	Value string
	Valid bool
	Set   bool
}

// StringPatchFrom creates a present, valued patch
func StringPatchFrom(value string) StringPatch {
	return StringPatch{Value: value, Valid: true, Set: true}
}

// StringPatchNull creates a present-but-null patch, as produced by an
// explicit JSON null.
func StringPatchNull() StringPatch {
	return StringPatch{Set: true}
}

func (p *StringPatch) UnmarshalJSON(data []byte) error {
	p.Set = true
	if bytes.Equal(data, []byte("null")) {
		p.Value = ""
		p.Valid = false
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	p.Value = s
	p.Valid = true
	return nil
}

// NullString converts the patch to its stored column value.
func (p StringPatch) NullString() null.String {
	if p.Valid {
		return null.StringFrom(p.Value)
	}
	return null.String{}
}
