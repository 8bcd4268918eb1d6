package cli

import (
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pzshine/membit-prediction-market-insight/internal/config"
)

const (
	defaultClusterLimit = 10
	defaultPostLimit    = 5
)

var promptColor = color.New(color.Bold)

// NewRootCmd returns the root command. Running it without a subcommand
// starts the interactive question loop.
func NewRootCmd(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "membit",
		Short:         "Surface live Membit discussion clusters for a question",
		Long:          "Fetch fresh Membit discussion clusters and raw posts for a natural-language question, with an optional Gemini summary of the retrieved clusters.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if app.verbose {
				app.Logger.SetLevel(logrus.DebugLevel)
			}
			if app.noColor {
				color.NoColor = true
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runREPL(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.IntVar(&app.clusterLimit, "clusters", config.GetEnvInt("MEMBIT_CLUSTER_LIMIT", defaultClusterLimit), "clusters fetched per question (API caps apply)")
	flags.IntVar(&app.postLimit, "posts", config.GetEnvInt("MEMBIT_POST_LIMIT", defaultPostLimit), "posts fetched per question (API caps apply)")
	flags.BoolVar(&app.noSummary, "no-summary", false, "skip the Gemini summary even when configured")
	flags.BoolVarP(&app.verbose, "verbose", "v", false, "enable verbose logging")
	flags.BoolVar(&app.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(newAskCmd(app))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
