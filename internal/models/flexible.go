package models

import "encoding/json"

// FlexibleStrings accepts either a JSON array of strings or a single string
// from the backend. The backend is inconsistent about this for the custom
// attribute fields, so the ambiguity is absorbed at unmarshal time and the
// transform layer decides how a single string is split.
type FlexibleStrings struct {
	Values []string
	// Raw holds the single-string form when the backend sent one.
	Raw      string
	IsString bool
	present  bool
}

func (f *FlexibleStrings) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		f.Values = list
		f.present = true
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	f.Raw = single
	f.IsString = true
	f.present = true
	return nil
}

func (f FlexibleStrings) MarshalJSON() ([]byte, error) {
	if f.IsString {
		return json.Marshal(f.Raw)
	}
	if !f.present {
		return []byte("null"), nil
	}
	return json.Marshal(f.Values)
}

// Present reports whether the backend sent the field at all.
func (f FlexibleStrings) Present() bool {
	return f.present
}

// List constructs the list-form variant, mostly used by tests and fixtures.
func List(values ...string) FlexibleStrings {
	return FlexibleStrings{Values: values, present: true}
}

// Text constructs the single-string variant.
func Text(s string) FlexibleStrings {
	return FlexibleStrings{Raw: s, IsString: true, present: true}
}
