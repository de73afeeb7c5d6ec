// Package cli provides the cobra command tree for warp.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/warp/internal/adapters/driven/config/script"
	"github.com/custodia-labs/warp/internal/core/ports/driven"
	"github.com/custodia-labs/warp/internal/core/services"
	"github.com/custodia-labs/warp/internal/logger"
)

// version is set at build time via -ldflags "-X ...cli.version=...".
var version = "dev"

var verbose bool

// scriptSource supplies the runner's script. Tests swap it out.
var scriptSource driven.ScriptSource = script.NewSource()

var rootCmd = &cobra.Command{
	Use:   "warp",
	Short: "Greet and demonstrate guarded division",
	Long: `Prints a greeting, then divides a fixed set of operand pairs.
A zero divisor prints a diagnostic and yields None instead of failing.`,
	Args: cobra.NoArgs,
	// Errors are reported on stderr without the usage text, keeping stdout
	// limited to program output.
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		logger.SetOutput(cmd.ErrOrStderr())
		logger.SetVerbose(verbose)
	},
	RunE: runRoot,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runRoot(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	runner := services.NewRunnerService(scriptSource, services.NewDividerService(out), out)
	return runner.Run(cmd.Context())
}
