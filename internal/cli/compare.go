package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/habitstack/pkg/errors"
	"github.com/matzehuels/habitstack/pkg/stats"
)

var consistencyStyles = map[stats.Consistency]lipgloss.Style{
	stats.ConsistencyHigh:   lipgloss.NewStyle().Foreground(colorGreen),
	stats.ConsistencyMedium: lipgloss.NewStyle().Foreground(colorYellow),
	stats.ConsistencyLow:    lipgloss.NewStyle().Foreground(colorRed),
}

// compareCommand prints a side-by-side comparison of habits.
func (c *CLI) compareCommand() *cobra.Command {
	var opts windowOpts

	cmd := &cobra.Command{
		Use:   "compare id...",
		Short: "Compare habits side by side",
		Example: `  habitstack compare stretch run meditate
  habitstack compare stretch run --days 60`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			win, err := opts.resolve(ws)
			if err != nil {
				return err
			}
			for _, id := range args {
				if _, ok := ws.habits.Find(id); !ok {
					return errors.New(errors.ErrCodeHabitNotFound, "no habit with id %q", id)
				}
			}

			rows := [][]string{}
			for _, cmp := range stats.Compare(args, ws.habits, ws.today, win.days, win.weeks) {
				rows = append(rows, []string{
					cmp.Title,
					fmt.Sprintf("%d%%", cmp.Percent),
					strconv.Itoa(cmp.Streak),
					consistencyStyles[cmp.Consistency].Render(string(cmp.Consistency)),
					sparkline(cmp.Weekly),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), newTable("Habit", "Rate", "Streak", "Consistency", "Weekly").Rows(rows...).Render())
			return nil
		},
	}

	opts.register(cmd)
	return cmd
}
