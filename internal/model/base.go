package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ── PostgreSQL JSONB custom types ──

// JSONMap maps to a JSONB column holding a free-form object, such as the
// weekly operating hours of a dining hall. The schema is not validated.
type JSONMap map[string]interface{}

// Scan parses a JSONB value into the map.
func (m *JSONMap) Scan(src interface{}) error {
	if src == nil {
		*m = nil
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("JSONMap.Scan: unsupported type %T", src)
	}
	return json.Unmarshal(b, m)
}

// Value serializes the map as JSONB.
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// StringList maps to a JSONB column holding a list of strings, such as meal
// allergens or dietary tags.
type StringList []string

// Scan parses a JSONB array into the slice.
func (l *StringList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("StringList.Scan: unsupported type %T", src)
	}
	return json.Unmarshal(b, l)
}

// Value serializes the slice as JSONB.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}
