package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wbreza/drawkit/internal/layout"
)

func newKindsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the widget kinds a layout can use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, kind := range layout.Kinds() {
				fmt.Fprintln(cmd.OutOrStdout(), kind)
			}

			return nil
		},
	}
}
