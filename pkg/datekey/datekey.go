package datekey

import (
	"strings"
	"time"
)

// Layout is the time layout of a Key.
const Layout = "2006-01-02"

// Key is a canonical "YYYY-MM-DD" calendar-day key.
type Key string

// String returns the key as a plain string.
func (k Key) String() string { return string(k) }

// Valid reports whether k names a real calendar day.
func (k Key) Valid() bool {
	_, err := time.Parse(Layout, string(k))
	return err == nil
}

// Time returns midnight of the key's day in loc, or false if k is invalid.
// A nil loc means time.Local.
func (k Key) Time(loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(Layout, string(k), loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Of returns the key for the calendar day of t in t's location.
func Of(t time.Time) Key {
	return Key(t.Format(Layout))
}

// Normalize converts a date-like value to its Key.
//
// Supported inputs are time.Time, *time.Time, Key and string. Strings may be
// a bare date or a full ISO-8601 timestamp; only the part before "T" is
// used, so the date written in the string wins over any offset it carries.
// Zero times, nil values, unsupported types and strings that do not start
// with a valid date return ("", false).
func Normalize(input any) (Key, bool) {
	switch v := input.(type) {
	case nil:
		return "", false
	case time.Time:
		if v.IsZero() {
			return "", false
		}
		return Of(v), true
	case *time.Time:
		if v == nil || v.IsZero() {
			return "", false
		}
		return Of(*v), true
	case Key:
		return fromString(string(v))
	case string:
		return fromString(v)
	default:
		return "", false
	}
}

func fromString(s string) (Key, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	date, _, _ := strings.Cut(s, "T")
	k := Key(date)
	if !k.Valid() {
		return "", false
	}
	return k, true
}

// Parse parses a "YYYY-MM-DD" string into midnight in loc.
// It is stricter than Normalize and is meant for command-line input.
func Parse(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(Layout, strings.TrimSpace(s), loc)
}

// Range returns the keys of the days calendar days ending at end, inclusive,
// newest first. days <= 0 returns nil.
func Range(end time.Time, days int) []Key {
	if days <= 0 {
		return nil
	}
	keys := make([]Key, days)
	for i := range days {
		keys[i] = Of(end.AddDate(0, 0, -i))
	}
	return keys
}
