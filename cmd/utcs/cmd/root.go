package cmd

import (
	"os"
	_ "time/tzdata" // zone resolution must work without a system database

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	log     zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "utcs",
	Short: "Canonical UTC timestamp tooling",
	Long: `utcs validates, canonicalizes, and displays UTC timestamps in the
canonical storage format yyyy-MM-ddThh:mm:ss[.f{1,9}]Z.

Storage-side timestamps stay in UTC; the local command applies an IANA
timezone for display only.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.WarnLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).With().Timestamp().Logger()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose diagnostics on stderr")
}
