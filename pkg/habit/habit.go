package habit

import (
	"strings"

	"github.com/matzehuels/habitstack/pkg/datekey"
)

// Mode selects how a Frequency schedules a habit.
type Mode string

const (
	// ModeDaily schedules the habit every day.
	ModeDaily Mode = "daily"
	// ModeWeekly schedules the habit on the weekdays listed in Days.
	ModeWeekly Mode = "weekly"
	// ModeCustom behaves like ModeWeekly; it exists so clients can tell a
	// hand-picked set of days apart from a plain weekly rule.
	ModeCustom Mode = "custom"
)

// Normalized returns the lower-cased, trimmed mode.
func (m Mode) Normalized() Mode {
	return Mode(strings.ToLower(strings.TrimSpace(string(m))))
}

// Frequency is a recurrence rule. Days holds weekday integers with
// Sunday = 0 (matching time.Weekday) and is required for weekly and custom
// rules.
type Frequency struct {
	Mode Mode  `json:"mode" toml:"mode"`
	Days []int `json:"days,omitempty" toml:"days,omitempty"`
}

// Daily returns a rule that is due every day.
func Daily() *Frequency { return &Frequency{Mode: ModeDaily} }

// Weekly returns a rule that is due on the given weekdays.
func Weekly(days ...int) *Frequency {
	if days == nil {
		days = []int{}
	}
	return &Frequency{Mode: ModeWeekly, Days: days}
}

// Habit is a single tracked habit.
type Habit struct {
	ID            string      `json:"id" toml:"id"`
	Title         string      `json:"title" toml:"title"`
	Freq          *Frequency  `json:"freq,omitempty" toml:"freq,omitempty"`
	Prerequisites []string    `json:"prerequisites,omitempty" toml:"prerequisites,omitempty"`
	Progress      datekey.Set `json:"progress,omitempty" toml:"progress,omitempty"`
}

// DisplayName returns the title, or the id when the title is blank.
func (h *Habit) DisplayName() string {
	if h == nil {
		return ""
	}
	if strings.TrimSpace(h.Title) != "" {
		return h.Title
	}
	return h.ID
}

// CompletedOn reports whether the habit's progress contains k.
// Safe on a nil habit.
func (h *Habit) CompletedOn(k datekey.Key) bool {
	if h == nil {
		return false
	}
	return h.Progress.Has(k)
}

// Collection is a snapshot of a user's habits.
type Collection []Habit

// Find returns the habit with the given id. The returned pointer refers to
// the collection's element; callers must treat it as read-only.
func (c Collection) Find(id string) (*Habit, bool) {
	for i := range c {
		if c[i].ID == id {
			return &c[i], true
		}
	}
	return nil, false
}

// Index returns a lookup map from id to habit. For duplicate ids the first
// habit wins, matching Find.
func (c Collection) Index() map[string]*Habit {
	idx := make(map[string]*Habit, len(c))
	for i := range c {
		if _, exists := idx[c[i].ID]; !exists {
			idx[c[i].ID] = &c[i]
		}
	}
	return idx
}

// IDs returns the habit ids in collection order.
func (c Collection) IDs() []string {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return ids
}

// Search returns the habits whose title contains query, ignoring case.
// A blank query returns the whole collection.
func (c Collection) Search(query string) Collection {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c
	}
	var out Collection
	for _, h := range c {
		if strings.Contains(strings.ToLower(h.Title), q) {
			out = append(out, h)
		}
	}
	return out
}
