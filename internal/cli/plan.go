package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/habitstack/pkg/datekey"
	"github.com/matzehuels/habitstack/pkg/deps"
	"github.com/matzehuels/habitstack/pkg/habit"
)

// planCommand prints the day's habits in an order that respects
// prerequisites.
func (c *CLI) planCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Order the day's habits so prerequisites come first",
		Long: `Group the habits due on the reference day into steps. Every habit's
prerequisites sit in an earlier step, so working through the steps in order
never hits a locked habit. Completed habits are marked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			tiers, err := deps.Tiers(ws.habits)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, StyleTitle.Render("Plan for "+datekey.Of(ws.today).String()))
			idx := ws.habits.Index()
			step := 0
			for _, tier := range tiers {
				var lines []string
				for _, id := range tier {
					h := idx[id]
					st := habit.StatusOn(h, ws.habits, ws.today)
					if st == habit.StatusNotDue && !all {
						continue
					}
					lines = append(lines, fmt.Sprintf("  %s %s", renderStatus(st), h.DisplayName()))
				}
				if len(lines) == 0 {
					continue
				}
				step++
				fmt.Fprintln(out, StyleNumber.Render(fmt.Sprintf("Step %d", step)))
				for _, l := range lines {
					fmt.Fprintln(out, l)
				}
			}
			if step == 0 {
				printInfo(out, "Nothing due")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include habits not scheduled that day")
	return cmd
}
