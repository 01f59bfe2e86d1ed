package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "parse FILE",
		Short: "Parse a CPT file and print the profile",
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}

	RootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	p, err := readProfile(args[0])
	if err != nil {
		return err
	}
	slog.Debug("profile parsed", "file", args[0], "rows", p.Rows())

	out := cmd.OutOrStdout()
	if settings.OutputFormat == "text" {
		return writeProfileText(out, p)
	}
	return writeValue(out, settings.OutputFormat, p)
}
