package habit

import (
	"testing"

	"github.com/matzehuels/habitstack/pkg/datekey"
)

func TestCollectionFind(t *testing.T) {
	c := Collection{
		{ID: "a", Title: "Alpha"},
		{ID: "b", Title: "Beta"},
		{ID: "a", Title: "Shadowed"},
	}

	h, ok := c.Find("b")
	if !ok || h.Title != "Beta" {
		t.Errorf("Find(b) = %v, %v", h, ok)
	}

	h, ok = c.Find("a")
	if !ok || h.Title != "Alpha" {
		t.Errorf("Find(a) should return the first match, got %v", h)
	}

	if _, ok := c.Find("missing"); ok {
		t.Error("Find(missing) ok = true, want false")
	}

	var empty Collection
	if _, ok := empty.Find("a"); ok {
		t.Error("Find on nil collection ok = true, want false")
	}
}

func TestCollectionIndex(t *testing.T) {
	c := Collection{{ID: "a", Title: "first"}, {ID: "a", Title: "second"}, {ID: "b"}}
	idx := c.Index()
	if len(idx) != 2 {
		t.Fatalf("len(Index()) = %d, want 2", len(idx))
	}
	if idx["a"].Title != "first" {
		t.Errorf("Index()[a] = %q, want first", idx["a"].Title)
	}
}

func TestCollectionSearch(t *testing.T) {
	c := Collection{
		{ID: "1", Title: "Morning Run"},
		{ID: "2", Title: "Evening run"},
		{ID: "3", Title: "Read"},
	}

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"1", "2", "3"}},
		{"   ", []string{"1", "2", "3"}},
		{"run", []string{"1", "2"}},
		{"RUN", []string{"1", "2"}},
		{"read", []string{"3"}},
		{"swim", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := c.Search(tt.query).IDs()
			if len(got) != len(tt.want) {
				t.Fatalf("Search(%q) = %v, want %v", tt.query, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Search(%q) = %v, want %v", tt.query, got, tt.want)
				}
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	if got := (&Habit{ID: "x", Title: "Walk"}).DisplayName(); got != "Walk" {
		t.Errorf("DisplayName() = %q, want Walk", got)
	}
	if got := (&Habit{ID: "x", Title: "  "}).DisplayName(); got != "x" {
		t.Errorf("DisplayName() = %q, want x", got)
	}
	var nilHabit *Habit
	if got := nilHabit.DisplayName(); got != "" {
		t.Errorf("nil DisplayName() = %q, want empty", got)
	}
}

func TestCompletedOn(t *testing.T) {
	h := &Habit{Progress: datekey.NewSet("2026-10-19")}
	if !h.CompletedOn("2026-10-19") {
		t.Error("CompletedOn(2026-10-19) = false, want true")
	}
	if h.CompletedOn("2026-10-18") {
		t.Error("CompletedOn(2026-10-18) = true, want false")
	}
	var nilHabit *Habit
	if nilHabit.CompletedOn("2026-10-19") {
		t.Error("nil CompletedOn() = true, want false")
	}
}
