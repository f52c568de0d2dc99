package providers

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexInt decodes a JSON number or numeric string. A value that fails to
// parse is absorbed as null so one corrupt field never drops the enclosing
// record.
type FlexInt struct {
	value *int
}

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	f.value = nil
	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "null" {
		return nil
	}
	raw = strings.Trim(raw, `"`)
	if raw == "" {
		return nil
	}
	// Heights occasionally arrive as floats ("75.0"); truncate rather than reject.
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		n := int(v)
		f.value = &n
	}
	return nil
}

// Ptr returns the parsed value, or nil when the field was absent or malformed.
func (f FlexInt) Ptr() *int {
	if f.value == nil {
		return nil
	}
	v := *f.value
	return &v
}

// FlexString decodes a JSON string or bare number into a string, for
// providers that are inconsistent about id types.
type FlexString struct {
	value string
}

func (f *FlexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.value = s
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		f.value = n.String()
		return nil
	}
	f.value = ""
	return nil
}

func (f FlexString) String() string { return f.value }
