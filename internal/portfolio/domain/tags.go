package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Tags is an ordered list of project tags.
//
// On input it accepts either a JSON array of strings or a single
// comma-separated string ("Go, Redis"); both decode to the same list.
type Tags []string

func (t *Tags) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = nil
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = NormalizeTags(strings.Split(s, ","))
		return nil
	case '[':
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return fmt.Errorf("tags must be a list of strings: %w", err)
		}
		*t = NormalizeTags(list)
		return nil
	default:
		return fmt.Errorf("tags must be a list of strings or a comma-separated string")
	}
}

// MarshalJSON never emits null so clients can always iterate the list.
func (t Tags) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(t))
}

// NormalizeTags trims each tag and drops empty entries, keeping order.
func NormalizeTags(in []string) Tags {
	out := make(Tags, 0, len(in))
	for _, tag := range in {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		out = append(out, tag)
	}
	return out
}
