package habit

import (
	"testing"
	"time"

	"github.com/matzehuels/habitstack/pkg/datekey"
)

// 2026-10-18 is a Sunday.
var sunday = time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

func day(offset int) time.Time { return sunday.AddDate(0, 0, offset) }

func TestIsDueDailyEveryDay(t *testing.T) {
	h := &Habit{ID: "d", Freq: Daily()}
	for i := range 60 {
		if !IsDue(h, day(i)) {
			t.Fatalf("daily habit not due on %s", datekey.Of(day(i)))
		}
	}
}

func TestIsDueWeekly(t *testing.T) {
	h := &Habit{ID: "w", Freq: Weekly(1, 3)}
	for i := range 14 {
		d := day(i)
		want := d.Weekday() == time.Monday || d.Weekday() == time.Wednesday
		if got := IsDue(h, d); got != want {
			t.Errorf("IsDue(%s, %s) = %v, want %v", h.ID, d.Weekday(), got, want)
		}
	}
}

func TestIsDue(t *testing.T) {
	tests := []struct {
		name  string
		habit *Habit
		date  time.Time
		want  bool
	}{
		{"nil habit", nil, sunday, false},
		{"nil freq", &Habit{ID: "x"}, sunday, false},
		{"empty mode", &Habit{Freq: &Frequency{}}, sunday, false},
		{"unknown mode", &Habit{Freq: &Frequency{Mode: "monthly"}}, sunday, false},
		{"uppercase daily", &Habit{Freq: &Frequency{Mode: "DAILY"}}, sunday, true},
		{"padded weekly", &Habit{Freq: &Frequency{Mode: " Weekly ", Days: []int{0}}}, sunday, true},
		{"weekly nil days", &Habit{Freq: &Frequency{Mode: ModeWeekly}}, sunday, false},
		{"weekly empty days", &Habit{Freq: Weekly()}, sunday, false},
		{"custom sunday", &Habit{Freq: &Frequency{Mode: ModeCustom, Days: []int{0, 6}}}, sunday, true},
		{"custom saturday", &Habit{Freq: &Frequency{Mode: ModeCustom, Days: []int{0, 6}}}, day(6), true},
		{"custom monday", &Habit{Freq: &Frequency{Mode: ModeCustom, Days: []int{0, 6}}}, day(1), false},
		{"out of range day ignored", &Habit{Freq: Weekly(9)}, sunday, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDue(tt.habit, tt.date); got != tt.want {
				t.Errorf("IsDue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsDueUsesDateLocation(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	// Sunday 20:00 UTC is already Monday in Tokyo.
	utc := time.Date(2026, 10, 18, 20, 0, 0, 0, time.UTC)
	h := &Habit{Freq: Weekly(1)}
	if IsDue(h, utc) {
		t.Error("IsDue() in UTC = true, want false (Sunday)")
	}
	if !IsDue(h, utc.In(tokyo)) {
		t.Error("IsDue() in Tokyo = false, want true (Monday)")
	}
}

func TestIsPrerequisitesMet(t *testing.T) {
	today := datekey.Of(sunday)
	yesterday := datekey.Of(day(-1))

	all := Collection{
		{ID: "stretch", Progress: datekey.NewSet(today)},
		{ID: "water", Progress: datekey.NewSet(yesterday)},
		{ID: "nothing"},
	}

	tests := []struct {
		name  string
		habit *Habit
		want  bool
	}{
		{"nil habit", nil, true},
		{"no prerequisites", &Habit{ID: "run"}, true},
		{"empty prerequisites", &Habit{ID: "run", Prerequisites: []string{}}, true},
		{"met same day", &Habit{ID: "run", Prerequisites: []string{"stretch"}}, true},
		{"completed previous day only", &Habit{ID: "run", Prerequisites: []string{"water"}}, false},
		{"never completed", &Habit{ID: "run", Prerequisites: []string{"nothing"}}, false},
		{"dangling id", &Habit{ID: "run", Prerequisites: []string{"ghost"}}, false},
		{"all met", &Habit{ID: "run", Prerequisites: []string{"stretch", "stretch"}}, true},
		{"one unmet", &Habit{ID: "run", Prerequisites: []string{"stretch", "water"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPrerequisitesMet(tt.habit, all, sunday); got != tt.want {
				t.Errorf("IsPrerequisitesMet() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsPrerequisitesMetEmptyForAnyInput(t *testing.T) {
	h := &Habit{ID: "free"}
	collections := []Collection{nil, {}, {{ID: "other"}}}
	for _, c := range collections {
		for i := range 10 {
			if !IsPrerequisitesMet(h, c, day(i)) {
				t.Fatalf("habit without prerequisites reported unmet on %s", datekey.Of(day(i)))
			}
		}
	}
}

func TestUnmetAndDangling(t *testing.T) {
	today := datekey.Of(sunday)
	all := Collection{
		{ID: "a", Title: "A", Progress: datekey.NewSet(today)},
		{ID: "b", Title: "B"},
		{ID: "c", Title: "C"},
	}
	h := &Habit{ID: "x", Prerequisites: []string{"c", "ghost", "a", "b"}}

	unmet := UnmetPrerequisites(h, all, sunday)
	if len(unmet) != 2 || unmet[0].ID != "c" || unmet[1].ID != "b" {
		t.Errorf("UnmetPrerequisites() = %v, want [c b]", unmet)
	}

	dangling := DanglingPrerequisites(h, all)
	if len(dangling) != 1 || dangling[0] != "ghost" {
		t.Errorf("DanglingPrerequisites() = %v, want [ghost]", dangling)
	}

	if UnmetPrerequisites(nil, all, sunday) != nil {
		t.Error("UnmetPrerequisites(nil) should be nil")
	}
}

func TestStatusOn(t *testing.T) {
	today := datekey.Of(sunday)
	all := Collection{
		{ID: "base", Freq: Daily()},
		{ID: "done", Freq: Daily(), Progress: datekey.NewSet(today)},
		{ID: "gated", Freq: Daily(), Prerequisites: []string{"base"}},
		{ID: "weekday", Freq: Weekly(1, 2, 3, 4, 5)},
		{ID: "bonus", Freq: Weekly(1), Progress: datekey.NewSet(today)},
	}

	tests := []struct {
		id   string
		want Status
	}{
		{"base", StatusOpen},
		{"done", StatusDone},
		{"gated", StatusLocked},
		{"weekday", StatusNotDue},
		{"bonus", StatusDone},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			h, _ := all.Find(tt.id)
			if got := StatusOn(h, all, sunday); got != tt.want {
				t.Errorf("StatusOn(%s) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}

	if StatusLocked.String() != "locked" || StatusNotDue.String() != "not due" {
		t.Error("unexpected Status strings")
	}
}
