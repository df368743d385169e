// Package datekey provides canonical calendar-day keys.
//
// A [Key] is a "YYYY-MM-DD" string naming one calendar day. All habit
// progress and eligibility bookkeeping is done in keys rather than
// timestamps, so two instants on the same local day always compare equal.
//
// # Normalization
//
// [Normalize] accepts the loosely-typed values a caller may hold (a
// [time.Time], a pointer to one, an ISO-8601 string, or an existing key) and
// returns the key plus an ok flag. It never panics: anything it cannot read
// yields ("", false).
//
//	k, ok := datekey.Normalize("2026-10-19T07:30:00Z") // "2026-10-19", true
//	k, ok = datekey.Normalize(time.Now())               // today in time.Local
//
// Keys derived from a [time.Time] use the calendar of the value's own
// location. Callers that want "local time" semantics should pass times in
// the location they mean.
//
// # Sets
//
// [Set] is a membership set of keys with JSON and TOML codecs that read and
// write a sorted array, matching how progress lists are stored in habit files.
package datekey
