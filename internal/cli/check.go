package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/habitstack/pkg/deps"
	"github.com/matzehuels/habitstack/pkg/errors"
	"github.com/matzehuels/habitstack/pkg/habit"
)

// checkCommand validates prerequisite edits and the stored collection.
func (c *CLI) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [id [prereq...]]",
		Short: "Check prerequisites for cycles",
		Long: `Check whether giving a habit a prerequisite list would make it depend on
itself, directly or through other habits.

With an id and prerequisites, the proposed list replaces the habit's
current one for the check; the id may name a habit that does not exist yet.
With only an id, the habit's current prerequisites are checked. Without
arguments the whole collection is checked and unknown prerequisite ids are
reported.`,
		Example: `  habitstack check
  habitstack check run stretch warmup
  habitstack check new-habit run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			if len(args) == 0 {
				return checkAll(cmd, ws.habits)
			}
			return checkEdit(cmd, ws.habits, args[0], args[1:])
		},
	}
}

func checkAll(cmd *cobra.Command, all habit.Collection) error {
	out := cmd.OutOrStdout()
	dangling := 0
	for i := range all {
		for _, id := range habit.DanglingPrerequisites(&all[i], all) {
			printWarning(out, "%s: prerequisite %q matches no habit", all[i].ID, id)
			dangling++
		}
	}
	if err := deps.Validate(all); err != nil {
		return err
	}
	if dangling > 0 {
		printSuccess(out, "No cycles in %d habits (%d unknown prerequisites)", len(all), dangling)
		return nil
	}
	printSuccess(out, "No cycles in %d habits", len(all))
	return nil
}

func checkEdit(cmd *cobra.Command, all habit.Collection, id string, prereqs []string) error {
	if err := errors.ValidateHabitID(id); err != nil {
		return err
	}
	if len(prereqs) == 0 {
		h, ok := all.Find(id)
		if !ok {
			return errors.New(errors.ErrCodeHabitNotFound, "no habit with id %q", id)
		}
		prereqs = h.Prerequisites
	}
	if cycle := deps.FindCycle(id, prereqs, all); cycle != nil {
		return errors.Wrap(errors.ErrCodeCycleDetected, &errors.CycleError{Path: cycle},
			"%s would depend on itself: %s", id, errors.FormatPath(cycle))
	}

	out := cmd.OutOrStdout()
	idx := all.Index()
	for _, p := range prereqs {
		if _, ok := idx[p]; !ok {
			printWarning(out, "prerequisite %q matches no habit", p)
		}
	}
	printSuccess(out, "%s can depend on %d prerequisites without a cycle", id, len(prereqs))
	return nil
}
