// JSON-backed column types for catalog rows.
//
// Catalog data is externally authored (CMS imports, bulk uploads), so both
// types decode tolerantly at the data-access boundary: any payload that is
// not the expected shape scans to the empty value instead of failing the
// whole row read. A broken attribute blob must not take search down.
package domain

import (
	"database/sql/driver"
	"encoding/json"
	"sort"
)

// DetailField is one structured product attribute.
type DetailField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// DetailList is an ordered list of product attributes stored as a JSON text
// column. Older imports stored details as a flat {"label": "value"} object;
// Scan accepts both shapes. Object keys are sorted when decoding the legacy
// shape so the resulting order is stable across reads.
type DetailList []DetailField

// Scan implements sql.Scanner. Unknown or malformed payloads decode to an
// empty list, never an error.
func (d *DetailList) Scan(value any) error {
	*d = nil
	raw, ok := rawBytes(value)
	if !ok || len(raw) == 0 {
		return nil
	}

	var list []DetailField
	if err := json.Unmarshal(raw, &list); err == nil {
		*d = list
		return nil
	}

	var legacy map[string]string
	if err := json.Unmarshal(raw, &legacy); err == nil && len(legacy) > 0 {
		keys := make([]string, 0, len(legacy))
		for k := range legacy {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make(DetailList, 0, len(keys))
		for _, k := range keys {
			out = append(out, DetailField{Label: k, Value: legacy[k]})
		}
		*d = out
	}
	return nil
}

// Value implements driver.Valuer.
func (d DetailList) Value() (driver.Value, error) {
	if len(d) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// StringList is a JSON-encoded list of strings (category image URLs).
// Non-array payloads scan to an empty list.
type StringList []string

// Scan implements sql.Scanner.
func (s *StringList) Scan(value any) error {
	*s = nil
	raw, ok := rawBytes(value)
	if !ok || len(raw) == 0 {
		return nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		*s = list
	}
	return nil
}

// Value implements driver.Valuer.
func (s StringList) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// rawBytes extracts the textual payload from a driver value.
func rawBytes(value any) ([]byte, bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case []byte:
		return v, true
	case string:
		return []byte(v), true
	default:
		return nil, false
	}
}
