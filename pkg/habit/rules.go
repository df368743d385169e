package habit

import (
	"slices"
	"time"

	"github.com/matzehuels/habitstack/pkg/datekey"
)

// IsDue reports whether h is scheduled on date's weekday.
//
// Daily rules are always due. Weekly and custom rules are due when
// date.Weekday() is listed in Days. A nil habit, a missing rule, or an
// unknown mode is never due.
func IsDue(h *Habit, date time.Time) bool {
	if h == nil || h.Freq == nil {
		return false
	}
	switch h.Freq.Mode.Normalized() {
	case ModeDaily:
		return true
	case ModeWeekly, ModeCustom:
		if h.Freq.Days == nil {
			return false
		}
		return slices.Contains(h.Freq.Days, int(date.Weekday()))
	default:
		return false
	}
}

// IsPrerequisitesMet reports whether every prerequisite of h was completed
// on the same calendar day as date.
//
// A habit without prerequisites (including a nil habit) is unconstrained and
// always met. A prerequisite id that matches no habit in all fails closed.
// The check stops at the first unmet prerequisite.
func IsPrerequisitesMet(h *Habit, all Collection, date time.Time) bool {
	if h == nil || len(h.Prerequisites) == 0 {
		return true
	}
	day := datekey.Of(date)
	for _, id := range h.Prerequisites {
		p, ok := all.Find(id)
		if !ok {
			return false
		}
		if !p.CompletedOn(day) {
			return false
		}
	}
	return true
}

// IsEligible reports whether date counts for h: due and unlocked.
func IsEligible(h *Habit, all Collection, date time.Time) bool {
	return IsDue(h, date) && IsPrerequisitesMet(h, all, date)
}

// UnmetPrerequisites returns the prerequisite habits of h that were not
// completed on date's calendar day, in prerequisite order. Ids that match
// no habit are skipped; see DanglingPrerequisites.
func UnmetPrerequisites(h *Habit, all Collection, date time.Time) []*Habit {
	if h == nil {
		return nil
	}
	day := datekey.Of(date)
	var unmet []*Habit
	for _, id := range h.Prerequisites {
		p, ok := all.Find(id)
		if ok && !p.CompletedOn(day) {
			unmet = append(unmet, p)
		}
	}
	return unmet
}

// DanglingPrerequisites returns the prerequisite ids of h that match no
// habit in all.
func DanglingPrerequisites(h *Habit, all Collection) []string {
	if h == nil {
		return nil
	}
	var dangling []string
	for _, id := range h.Prerequisites {
		if _, ok := all.Find(id); !ok {
			dangling = append(dangling, id)
		}
	}
	return dangling
}

// Status is the state of a habit on one day, as shown to a user.
type Status int

const (
	// StatusNotDue means the rule does not schedule the habit that day.
	StatusNotDue Status = iota
	// StatusLocked means the habit is due but a prerequisite is not done.
	StatusLocked
	// StatusOpen means the habit is due, unlocked and not yet completed.
	StatusOpen
	// StatusDone means the habit was completed that day.
	StatusDone
)

// String returns the lower-case status name.
func (s Status) String() string {
	switch s {
	case StatusLocked:
		return "locked"
	case StatusOpen:
		return "open"
	case StatusDone:
		return "done"
	default:
		return "not due"
	}
}

// StatusOn classifies h on date. A completed day is reported as done even
// when the rule would not schedule it.
func StatusOn(h *Habit, all Collection, date time.Time) Status {
	if h.CompletedOn(datekey.Of(date)) {
		return StatusDone
	}
	if !IsDue(h, date) {
		return StatusNotDue
	}
	if !IsPrerequisitesMet(h, all, date) {
		return StatusLocked
	}
	return StatusOpen
}
