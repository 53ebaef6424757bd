package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList stores an ordered list of labels as a JSON column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}

	if len(raw) == 0 {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal(raw, l)
}

// DecodeSizes parses a JSON-encoded size list from a form field. Malformed
// input fails closed to an empty list instead of failing the request.
func DecodeSizes(raw string) StringList {
	if raw == "" {
		return StringList{}
	}
	var sizes StringList
	if err := json.Unmarshal([]byte(raw), &sizes); err != nil {
		return StringList{}
	}
	if sizes == nil {
		return StringList{}
	}
	return sizes
}
