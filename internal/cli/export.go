package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/habitstack/pkg/errors"
	habitio "github.com/matzehuels/habitstack/pkg/io"
)

// exportCommand writes the loaded collection back out in canonical form:
// generated ids filled in, progress sorted and deduplicated.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the habit collection as canonical JSON or TOML",
		Example: `  habitstack export > habits.json
  habitstack export -o habits.toml
  habitstack export --format toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			if output != "" {
				if err := habitio.ExportFile(ws.habits, output); err != nil {
					return err
				}
				printSuccess(cmd.ErrOrStderr(), "Exported %d habits", len(ws.habits))
				printFile(cmd.ErrOrStderr(), output)
				return nil
			}
			switch format {
			case "json":
				return habitio.WriteJSON(ws.habits, cmd.OutOrStdout())
			case "toml":
				return habitio.WriteTOML(ws.habits, cmd.OutOrStdout())
			default:
				return errors.New(errors.ErrCodeInvalidFormat, "unknown export format %q (want json or toml)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file; .toml selects TOML (default stdout)")
	cmd.Flags().StringVar(&format, "format", "json", "stdout format: json or toml")

	return cmd
}
