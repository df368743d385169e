package stats

import (
	"time"

	"github.com/matzehuels/habitstack/pkg/habit"
)

// Consistency buckets a completion rate for side-by-side comparison.
type Consistency string

const (
	ConsistencyHigh   Consistency = "High"
	ConsistencyMedium Consistency = "Medium"
	ConsistencyLow    Consistency = "Low"
)

// Thresholds for ConsistencyOf.
const (
	highThreshold   = 0.8
	mediumThreshold = 0.5
)

// ConsistencyOf classifies a rate: High at 0.8 and above, Medium at 0.5 and
// above, Low otherwise.
func ConsistencyOf(rate float64) Consistency {
	switch {
	case rate >= highThreshold:
		return ConsistencyHigh
	case rate >= mediumThreshold:
		return ConsistencyMedium
	default:
		return ConsistencyLow
	}
}

// Comparison is one row of a habit comparison.
type Comparison struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Rate        Rate        `json:"rate"`
	Percent     int         `json:"percent"`
	Streak      int         `json:"streak"`
	Consistency Consistency `json:"consistency"`
	Weekly      []float64   `json:"weekly"`
}

// Compare builds comparison rows for the habits named by ids, in the order
// given. Unknown ids are skipped; prerequisites are resolved against all.
func Compare(ids []string, all habit.Collection, today time.Time, daysBack, weeks int) []Comparison {
	rows := make([]Comparison, 0, len(ids))
	for _, id := range ids {
		h, ok := all.Find(id)
		if !ok {
			continue
		}
		rate := CompletionRate(h, all, today, daysBack)
		rows = append(rows, Comparison{
			ID:          h.ID,
			Title:       h.DisplayName(),
			Rate:        rate,
			Percent:     rate.Percent(),
			Streak:      CurrentStreak(h, all, today),
			Consistency: ConsistencyOf(rate.Rate),
			Weekly:      WeeklySeries(h, all, today, weeks),
		})
	}
	return rows
}
