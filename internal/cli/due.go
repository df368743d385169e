package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/habitstack/pkg/datekey"
	"github.com/matzehuels/habitstack/pkg/habit"
)

type dueOpts struct {
	all    bool
	search string
}

// dueCommand lists the habits scheduled on the reference day.
func (c *CLI) dueCommand() *cobra.Command {
	var opts dueOpts

	cmd := &cobra.Command{
		Use:   "due",
		Short: "List habits due on the reference day",
		Long: `List habits due on the reference day with their status.

A habit is locked while any of its prerequisites is not completed on the
same day. Locked habits show which prerequisites are still open.`,
		Example: `  habitstack due
  habitstack due --date 2026-10-18 --all
  habitstack due --search run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			return runDue(cmd, ws, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.all, "all", false, "also list habits not scheduled that day")
	cmd.Flags().StringVarP(&opts.search, "search", "s", "", "only habits whose title contains this text")

	return cmd
}

func runDue(cmd *cobra.Command, ws *workspace, opts dueOpts) error {
	out := cmd.OutOrStdout()
	logger := loggerFromContext(cmd.Context())

	rows := [][]string{}
	for _, h := range ws.habits.Search(opts.search) {
		st := habit.StatusOn(&h, ws.habits, ws.today)
		if st == habit.StatusNotDue && !opts.all {
			continue
		}
		rows = append(rows, []string{h.ID, h.DisplayName(), renderStatus(st), blockedBy(&h, ws.habits, ws.today, st)})
		for _, id := range habit.DanglingPrerequisites(&h, ws.habits) {
			logger.Warn("prerequisite matches no habit", "habit", h.ID, "prerequisite", id)
		}
	}

	fmt.Fprintln(out, StyleTitle.Render("Due on "+datekey.Of(ws.today).String()+" ("+ws.today.Weekday().String()+")"))
	if len(rows) == 0 {
		printInfo(out, "Nothing due")
		return nil
	}
	fmt.Fprintln(out, newTable("ID", "Habit", "Status", "Waiting on").Rows(rows...).Render())
	return nil
}

// blockedBy lists what keeps a locked habit locked: open prerequisites by
// title and unknown prerequisite ids.
func blockedBy(h *habit.Habit, all habit.Collection, date time.Time, st habit.Status) string {
	if st != habit.StatusLocked {
		return ""
	}
	var names []string
	for _, p := range habit.UnmetPrerequisites(h, all, date) {
		names = append(names, p.DisplayName())
	}
	for _, id := range habit.DanglingPrerequisites(h, all) {
		names = append(names, id+" (missing)")
	}
	return strings.Join(names, ", ")
}
