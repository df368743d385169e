// Package stats aggregates habit completion over rolling date ranges.
//
// Only eligible days count: a day is eligible for a habit when the habit is
// due that day (habit.IsDue) and all of its prerequisites were completed
// that same day (habit.IsPrerequisitesMet). Completion is measured against
// eligible days only, so a locked or unscheduled day never lowers a rate.
//
// Every function takes the reference day ("today") explicitly and walks
// calendar days backwards from it with time.AddDate, so results are
// deterministic and unaffected by daylight-saving shifts. Division by zero
// never happens: no eligible days means a rate of 0.
package stats
