package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/habitstack/pkg/datekey"
	"github.com/matzehuels/habitstack/pkg/habit"
	"github.com/matzehuels/habitstack/pkg/stats"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// tuiCommand opens the interactive habit browser.
func (c *CLI) tuiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse habits interactively",
		Long: `Browse habits with their status on the reference day, current streak and
completion rate. Press / to search by title.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			m := NewHabitListModel(ws.habits, ws.today, ws.cfg.DaysBack)
			p := tea.NewProgram(m,
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()
			return err
		},
	}
}

// =============================================================================
// HabitListModel - Interactive habit browser
// =============================================================================

// habitRow is a precomputed list entry.
type habitRow struct {
	habit   *habit.Habit
	status  habit.Status
	streak  int
	rate    stats.Rate
	blocked string
}

// HabitListModel is the bubbletea model for the habit browser.
type HabitListModel struct {
	rows      []habitRow
	visible   []int // indexes into rows matching Query
	Today     time.Time
	Query     string
	Searching bool
	Cursor    int
	Offset    int
	Height    int
}

// NewHabitListModel computes each habit's status, streak and rate on today.
func NewHabitListModel(all habit.Collection, today time.Time, daysBack int) HabitListModel {
	rows := make([]habitRow, len(all))
	for i := range all {
		h := &all[i]
		st := habit.StatusOn(h, all, today)
		rows[i] = habitRow{
			habit:   h,
			status:  st,
			streak:  stats.CurrentStreak(h, all, today),
			rate:    stats.CompletionRate(h, all, today, daysBack),
			blocked: blockedBy(h, all, today, st),
		}
	}
	m := HabitListModel{rows: rows, Today: today, Height: 15}
	m.filter()
	return m
}

// filter recomputes the visible rows for Query and clamps the cursor.
func (m *HabitListModel) filter() {
	q := strings.ToLower(strings.TrimSpace(m.Query))
	var visible []int
	for i, r := range m.rows {
		if q == "" || strings.Contains(strings.ToLower(r.habit.Title), q) {
			visible = append(visible, i)
		}
	}
	m.visible = visible
	m.Cursor = max(0, min(m.Cursor, len(m.visible)-1))
	m.Offset = max(0, min(m.Offset, m.Cursor))
}

// Visible returns the ids of the habits currently listed.
func (m HabitListModel) Visible() []string {
	ids := make([]string, len(m.visible))
	for i, idx := range m.visible {
		ids[i] = m.rows[idx].habit.ID
	}
	return ids
}

func (m HabitListModel) Init() tea.Cmd {
	return nil
}

func (m HabitListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Searching {
			return m.updateSearch(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "/":
			m.Searching = true
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.visible)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 5)
	}
	return m, nil
}

func (m HabitListModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEnter:
		m.Searching = false
	case tea.KeyEsc:
		m.Searching = false
		m.Query = ""
	case tea.KeyBackspace:
		if r := []rune(m.Query); len(r) > 0 {
			m.Query = string(r[:len(r)-1])
		}
	case tea.KeyRunes, tea.KeySpace:
		m.Query += string(msg.Runes)
	default:
		return m, nil
	}
	m.filter()
	return m, nil
}

func (m HabitListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Habits on " + datekey.Of(m.Today).String()))
	b.WriteString("\n")
	switch {
	case m.Searching:
		b.WriteString("/" + m.Query + listSelectedStyle.Render("▏"))
	case m.Query != "":
		b.WriteString(listDimStyle.Render(fmt.Sprintf("filter %q  / edit  ↑/↓ navigate  q quit", m.Query)))
	default:
		b.WriteString(listDimStyle.Render("/ search  ↑/↓ navigate  q quit"))
	}
	b.WriteString("\n\n")

	if len(m.visible) == 0 {
		b.WriteString(listDimStyle.Render("  no matching habits"))
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.visible))
	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		r := m.rows[m.visible[i]]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{
			cursor,
			r.habit.DisplayName(),
			statusIcons[r.status] + " " + r.status.String(),
			strconv.Itoa(r.streak),
			formatPercent(r.rate),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Habit", "Status", "Streak", "Rate").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			idx := m.Offset + row
			if idx >= len(m.visible) {
				return lipgloss.NewStyle()
			}
			base := statusStyles[m.rows[m.visible[idx]].status]
			if idx == m.Cursor {
				return base.Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	if cur := m.rows[m.visible[m.Cursor]]; cur.blocked != "" {
		b.WriteString(StyleWarning.Render("  waiting on " + cur.blocked))
		b.WriteString("\n")
	}
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.visible))))

	return b.String()
}
