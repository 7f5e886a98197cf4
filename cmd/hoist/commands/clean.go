package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/hoist/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove cached bootstrapper state",
		Long: "Remove cached bootstrapper state. With no flags the whole cache root\n" +
			"is removed; the next run rebuilds everything from the pinned versions.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tools, _ := cmd.Flags().GetBool("tools")
			engine, _ := cmd.Flags().GetBool("engine")
			all := !tools && !engine

			return c.app.Clean(cmd.Context(), app.CleanOptions{
				Tools:  tools,
				Engine: engine,
				All:    all,
			})
		},
	}
	cmd.Flags().Bool("tools", false, "Remove only the compiled tool snapshot cache")
	cmd.Flags().Bool("engine", false, "Remove only the downloaded engine artifacts")
	return cmd
}
