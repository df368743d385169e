package stats

import (
	"math"
	"slices"
	"time"

	"github.com/matzehuels/habitstack/pkg/datekey"
	"github.com/matzehuels/habitstack/pkg/habit"
)

const (
	// DefaultDaysBack is the window used by CompletionRate callers that do
	// not choose one.
	DefaultDaysBack = 30

	// DefaultWeeks is the number of buckets used by WeeklySeries callers
	// that do not choose one.
	DefaultWeeks = 4

	// MaxStreakDays bounds how far CurrentStreak looks back.
	MaxStreakDays = 366

	daysPerWeek = 7
)

// Rate is the outcome of a completion count over a window.
type Rate struct {
	Eligible  int     `json:"eligible"`
	Completed int     `json:"completed"`
	Rate      float64 `json:"rate"`
}

// Percent returns the rate as a whole percentage, rounded half away from
// zero.
func (r Rate) Percent() int {
	return int(math.Round(r.Rate * 100))
}

// tally counts eligible and completed days over days calendar days ending at
// end, inclusive.
func tally(h *habit.Habit, all habit.Collection, end time.Time, days int) Rate {
	var r Rate
	for i := range days {
		d := end.AddDate(0, 0, -i)
		if !habit.IsEligible(h, all, d) {
			continue
		}
		r.Eligible++
		if h.CompletedOn(datekey.Of(d)) {
			r.Completed++
		}
	}
	if r.Eligible > 0 {
		r.Rate = float64(r.Completed) / float64(r.Eligible)
	}
	return r
}

// CompletionRate counts eligible and completed days among the daysBack
// calendar days ending at today, inclusive. A nil habit or a non-positive
// window yields the zero Rate.
func CompletionRate(h *habit.Habit, all habit.Collection, today time.Time, daysBack int) Rate {
	if h == nil || daysBack <= 0 {
		return Rate{}
	}
	return tally(h, all, today, daysBack)
}

// WeeklySeries splits the weeks*7 days ending at today into consecutive
// 7-day buckets and returns each bucket's completion rate, oldest bucket
// first. The last element covers today and the six days before it. A bucket
// without eligible days is 0. A non-positive weeks yields an empty slice.
func WeeklySeries(h *habit.Habit, all habit.Collection, today time.Time, weeks int) []float64 {
	if weeks <= 0 {
		return []float64{}
	}
	series := make([]float64, 0, weeks)
	for w := range weeks {
		if h == nil {
			series = append(series, 0)
			continue
		}
		end := today.AddDate(0, 0, -w*daysPerWeek)
		series = append(series, tally(h, all, end, daysPerWeek).Rate)
	}
	// Buckets were scanned newest first.
	slices.Reverse(series)
	return series
}

// CurrentStreak counts consecutive completed eligible days ending at today.
//
// Days that are not eligible (not due, or locked) neither extend nor break
// the streak. Today is still open: if it is eligible but not completed yet,
// counting starts from yesterday instead of returning 0. The walk stops at
// the first eligible day that was missed, or after MaxStreakDays.
func CurrentStreak(h *habit.Habit, all habit.Collection, today time.Time) int {
	if h == nil {
		return 0
	}
	streak := 0
	for i := range MaxStreakDays {
		d := today.AddDate(0, 0, -i)
		if !habit.IsEligible(h, all, d) {
			continue
		}
		if h.CompletedOn(datekey.Of(d)) {
			streak++
			continue
		}
		if i == 0 {
			continue
		}
		break
	}
	return streak
}
