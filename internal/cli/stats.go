package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/habitstack/pkg/datekey"
	"github.com/matzehuels/habitstack/pkg/errors"
	"github.com/matzehuels/habitstack/pkg/stats"
)

// windowOpts are the look-back flags shared by stats and compare. Zero
// means "use the config value".
type windowOpts struct {
	days  int
	weeks int
}

func (o *windowOpts) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&o.days, "days", 0, "days counted by the completion rate (default from config)")
	cmd.Flags().IntVar(&o.weeks, "weeks", 0, "weeks shown in the weekly series (default from config)")
}

// resolve fills unset values from the config and rejects negative ones.
func (o windowOpts) resolve(ws *workspace) (windowOpts, error) {
	if o.days < 0 || o.weeks < 0 {
		return o, errors.New(errors.ErrCodeInvalidInput, "--days and --weeks must not be negative")
	}
	if o.days == 0 {
		o.days = ws.cfg.DaysBack
	}
	if o.weeks == 0 {
		o.weeks = ws.cfg.Weeks
	}
	return o, nil
}

// statsCommand prints completion metrics per habit.
func (c *CLI) statsCommand() *cobra.Command {
	var opts windowOpts

	cmd := &cobra.Command{
		Use:   "stats [id...]",
		Short: "Show completion rate, streak and weekly trend",
		Long: `Show completion statistics for the given habits, or all habits.

The rate counts only days on which the habit was due and its prerequisites
were done; days where nothing could be done do not count against it.`,
		Example: `  habitstack stats
  habitstack stats stretch run --days 90 --weeks 12`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			win, err := opts.resolve(ws)
			if err != nil {
				return err
			}
			selected, err := selectHabits(ws.habits, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, StyleTitle.Render(fmt.Sprintf("Last %d days to %s", win.days, datekey.Of(ws.today))))
			if len(selected) == 0 {
				printInfo(out, "No habits")
				return nil
			}

			rows := make([][]string, 0, len(selected))
			for i := range selected {
				h := &selected[i]
				r := stats.CompletionRate(h, ws.habits, ws.today, win.days)
				rows = append(rows, []string{
					h.ID,
					h.DisplayName(),
					fmt.Sprintf("%d/%d", r.Completed, r.Eligible),
					formatPercent(r),
					strconv.Itoa(stats.CurrentStreak(h, ws.habits, ws.today)),
					sparkline(stats.WeeklySeries(h, ws.habits, ws.today, win.weeks)),
				})
			}
			fmt.Fprintln(out, newTable("ID", "Habit", "Done", "Rate", "Streak", "Weekly").Rows(rows...).Render())
			return nil
		},
	}

	opts.register(cmd)
	return cmd
}
