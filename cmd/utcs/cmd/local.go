package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"utcs.dev/utcs/display"
	"utcs.dev/utcs/stamp"
	"utcs.dev/utcs/tzrule"
)

var (
	localZone    string
	localPattern string
)

var localCmd = &cobra.Command{
	Use:   "local [timestamp...]",
	Short: "Display canonical UTC timestamps in a named timezone",
	Long: `Convert canonical UTC timestamps to a local wall-clock reading for
display. The conversion applies the IANA rules in force at each instant,
including DST transitions. The output is display-only; never store it.`,
	RunE: runLocal,
}

func init() {
	localCmd.Flags().StringVarP(&localZone, "zone", "z", "UTC", "IANA timezone identifier, e.g. America/New_York")
	localCmd.Flags().StringVar(&localPattern, "pattern", display.DefaultPattern, "Go reference-time layout")
	rootCmd.AddCommand(localCmd)
}

func runLocal(cmd *cobra.Command, args []string) error {
	src := tzrule.NewStdSource()
	return eachInput(args, func(in string) error {
		i, err := stamp.Parse(in)
		if err != nil {
			log.Debug().Str("input", in).Str("rule", stamp.RuleID(err)).Msg("rejected")
			return err
		}
		ct, err := display.ToLocal(i, localZone, src)
		if err != nil {
			return err
		}
		log.Debug().Str("zone", localZone).Str("abbrev", ct.Abbrev).
			Str("offset", ct.OffsetString()).Msg("resolved")
		fmt.Println(display.Render(ct, localPattern))
		return nil
	})
}
