package cli

import (
	"github.com/spf13/cobra"

	"github.com/rcliao/gef-cpt/internal/cpt"
)

func init() {
	cmd := &cobra.Command{
		Use:   "info FILE",
		Short: "Show summary statistics for a CPT file",
		Args:  cobra.ExactArgs(1),
		RunE:  runInfo,
	}

	RootCmd.AddCommand(cmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	p, err := readProfile(args[0])
	if err != nil {
		return err
	}

	s := cpt.Summarize(p)
	if settings.OutputFormat == "text" {
		writeSummaryText(cmd.OutOrStdout(), s)
		return nil
	}
	return writeValue(cmd.OutOrStdout(), settings.OutputFormat, s)
}
