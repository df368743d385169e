package datekey

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Set is a membership set of day keys. The zero value is an empty,
// read-only set; use NewSet or Add to populate it.
type Set map[Key]struct{}

// NewSet builds a set from keys. Invalid keys are kept as-is; lookups use
// exact membership.
func NewSet(keys ...Key) Set {
	s := make(Set, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Has reports whether k is in the set. Safe on a nil set.
func (s Set) Has(k Key) bool {
	_, ok := s[k]
	return ok
}

// Add inserts k. It panics on a nil set, like any map write.
func (s Set) Add(k Key) { s[k] = struct{}{} }

// Len returns the number of keys.
func (s Set) Len() int { return len(s) }

// Sorted returns the keys in ascending (chronological) order.
func (s Set) Sorted() []Key {
	keys := make([]Key, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Clone returns an independent copy.
func (s Set) Clone() Set {
	c := make(Set, len(s))
	for k := range s {
		c[k] = struct{}{}
	}
	return c
}

// MarshalJSON encodes the set as a sorted array of strings.
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON decodes an array of strings. Each entry is normalized, so
// full timestamps collapse to their day. Unreadable entries are an error.
func (s *Set) UnmarshalJSON(data []byte) error {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	set := make(Set, len(raw))
	for _, r := range raw {
		k, ok := Normalize(r)
		if !ok {
			return fmt.Errorf("invalid date %q", r)
		}
		set[k] = struct{}{}
	}
	*s = set
	return nil
}

// MarshalTOML encodes the set as a TOML array of strings.
func (s Set) MarshalTOML() ([]byte, error) {
	keys := s.Sorted()
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strconv.Quote(string(k))
	}
	return []byte("[" + strings.Join(parts, ", ") + "]"), nil
}

// UnmarshalTOML decodes a TOML array of strings or dates. TOML local
// dates arrive as time.Time values and are keyed by their calendar day.
func (s *Set) UnmarshalTOML(data any) error {
	raw, ok := data.([]any)
	if !ok {
		return fmt.Errorf("progress must be an array, got %T", data)
	}
	set := make(Set, len(raw))
	for _, r := range raw {
		k, ok := Normalize(r)
		if !ok {
			return fmt.Errorf("invalid date %v", r)
		}
		set[k] = struct{}{}
	}
	*s = set
	return nil
}
