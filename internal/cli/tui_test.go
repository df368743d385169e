package cli

import (
	"slices"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/habitstack/pkg/datekey"
	"github.com/matzehuels/habitstack/pkg/habit"
)

func tuiHabits() habit.Collection {
	return habit.Collection{
		{ID: "stretch", Title: "Stretch", Freq: habit.Daily(), Progress: datekey.NewSet("2026-10-19")},
		{ID: "run", Title: "Run", Freq: habit.Daily(), Prerequisites: []string{"stretch"}},
		{ID: "meditate", Title: "Meditate", Freq: habit.Daily(), Prerequisites: []string{"run"}},
	}
}

func keys(m tea.Model, input ...tea.KeyMsg) HabitListModel {
	for _, k := range input {
		m, _ = m.Update(k)
	}
	return m.(HabitListModel)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestHabitListSearch(t *testing.T) {
	today := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	m := NewHabitListModel(tuiHabits(), today, 30)

	if got := m.Visible(); len(got) != 3 {
		t.Fatalf("Visible() = %v, want all habits", got)
	}

	m = keys(m, runes("/"), runes("r"), runes("u"))
	if !m.Searching {
		t.Fatal("model should be in search mode after /")
	}
	if got, want := m.Visible(), []string{"run"}; !slices.Equal(got, want) {
		t.Errorf("Visible() after typing %q = %v, want %v", m.Query, got, want)
	}

	m = keys(m, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Searching || m.Query != "r" {
		t.Errorf("after backspace+enter: searching=%v query=%q", m.Searching, m.Query)
	}

	m = keys(m, runes("/"), tea.KeyMsg{Type: tea.KeyEsc})
	if m.Query != "" || len(m.Visible()) != 3 {
		t.Errorf("esc should clear the filter, query=%q visible=%v", m.Query, m.Visible())
	}
}

func TestHabitListNavigation(t *testing.T) {
	today := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	m := NewHabitListModel(tuiHabits(), today, 30)

	m = keys(m, runes("j"), runes("j"), runes("j"))
	if m.Cursor != 2 {
		t.Errorf("Cursor = %d, want 2 (clamped at the last habit)", m.Cursor)
	}
	m = keys(m, runes("k"))
	if m.Cursor != 1 {
		t.Errorf("Cursor = %d, want 1", m.Cursor)
	}

	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Error("q should quit")
	}
}

func TestHabitListView(t *testing.T) {
	today := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	m := NewHabitListModel(tuiHabits(), today, 30)
	m = keys(m, runes("j"), runes("j"))

	view := m.View()
	for _, want := range []string{"2026-10-19", "Stretch", "done", "Run", "open", "Meditate", "locked", "waiting on Run", "[3/3]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	m = keys(m, runes("/"), runes("zzz"))
	if !strings.Contains(m.View(), "no matching habits") {
		t.Errorf("empty filter view:\n%s", m.View())
	}
}
