// Package cli implements the command-line interface using cobra.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/reparo-labs/partassist/internal/core/ports/driven"
	"github.com/reparo-labs/partassist/internal/core/ports/driving"
	"github.com/reparo-labs/partassist/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services injected by the composition root before Execute.
var (
	askService  driving.AskService
	configStore driven.ConfigStore
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "partassist",
	Short: "Appliance replacement-parts assistant",
	Long: `partassist answers questions about refrigerator and dishwasher
replacement parts: installation instructions, model compatibility,
and symptom-based part recommendations.

Run 'partassist ask' for one-off questions or 'partassist serve' to
expose the assistant over HTTP.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// SetServices injects the service implementations.
// Must be called before Execute.
func SetServices(ask driving.AskService, config driven.ConfigStore) {
	askService = ask
	configStore = config
}

// SetVersion sets the version string shown by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
