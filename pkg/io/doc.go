// Package io reads and writes habit files.
//
// # Formats
//
// JSON files hold an object with a "habits" array, or a bare array:
//
//	{
//	  "habits": [
//	    {"id": "stretch", "title": "Stretch", "freq": {"mode": "daily"},
//	     "progress": ["2026-10-18", "2026-10-19"]},
//	    {"id": "run", "title": "Run", "freq": {"mode": "weekly", "days": [1, 3, 5]},
//	     "prerequisites": ["stretch"]}
//	  ]
//	}
//
// TOML files use an array of tables with the same keys. Progress entries
// may be strings or TOML local dates:
//
//	[[habits]]
//	id = "stretch"
//	title = "Stretch"
//	freq = { mode = "daily" }
//	progress = [2026-10-18, "2026-10-19"]
//
// # Habit Fields
//
//   - id: unique within the file. Missing ids are filled with a random
//     UUID and reported in [Result.Generated].
//   - title: display name (optional).
//   - freq: recurrence rule; mode is "daily", "weekly" or "custom", days
//     are weekday numbers with Sunday = 0.
//   - prerequisites: ids of habits that must be completed the same day.
//   - progress: completed days. Timestamps are cut down to their day.
//
// # Validation
//
// Loading rejects malformed documents ([errors.ErrCodeInvalidFormat]) and
// invalid or duplicate ids ([errors.ErrCodeInvalidHabit]). It does not
// reject unknown frequency modes, dangling prerequisites or prerequisite
// cycles: the scheduling rules treat those as not due, locked, and the
// cycle check reports them separately.
//
// [errors.ErrCodeInvalidFormat]: https://pkg.go.dev/github.com/matzehuels/habitstack/pkg/errors#ErrCodeInvalidFormat
// [errors.ErrCodeInvalidHabit]: https://pkg.go.dev/github.com/matzehuels/habitstack/pkg/errors#ErrCodeInvalidHabit
package io
