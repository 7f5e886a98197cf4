// Package commands implements the CLI commands for the hoist bootstrapper.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/hoist/internal/app"
	"go.trai.ch/hoist/internal/build"
)

// CLI represents the command line interface for hoist.
//
// The root command is a pass-through: everything that is not a hoist
// subcommand is forwarded verbatim to the forge tool, flags included. Only
// "version" and "clean" are claimed by the wrapper itself.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:                "hoist [tool arguments...]",
		Short:              "Bootstrap the forge SDK and forward to the forge tool",
		SilenceUsage:       true,
		SilenceErrors:      true,
		Version:            build.Version,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Run(cmd.Context(), args)
		},
	}

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newVersionCmd())
	rootCmd.AddCommand(c.newCleanCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOut sets the writer for command output. Used for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}
