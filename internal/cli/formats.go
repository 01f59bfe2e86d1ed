package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/gef-cpt/internal/cpt"
)

func init() {
	cmd := &cobra.Command{
		Use:   "formats",
		Short: "List supported file formats",
		Args:  cobra.NoArgs,
		Run:   runFormats,
	}

	RootCmd.AddCommand(cmd)
}

func runFormats(cmd *cobra.Command, args []string) {
	for _, f := range cpt.Supported {
		note := ""
		if f == cpt.FormatXML {
			note = " (not implemented)"
		}
		fmt.Fprintf(cmd.OutOrStdout(), ".%s%s\n", f, note)
	}
}
