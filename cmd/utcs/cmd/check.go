package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"utcs.dev/utcs/stamp"
)

var checkCmd = &cobra.Command{
	Use:   "check [timestamp...]",
	Short: "Validate timestamps and report rule violations",
	Long: `Validate timestamps against the canonical grammar. Each input is
reported as OK or with the stable rule ID of the first violated rule.
The exit status is non-zero when any input fails.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	failures := 0
	err := eachInput(args, func(in string) error {
		if _, perr := stamp.Parse(in); perr != nil {
			failures++
			fmt.Printf("%s\t%s\t%v\n", in, stamp.RuleID(perr), perr)
			return nil
		}
		fmt.Printf("%s\tOK\n", in)
		return nil
	})
	if err != nil {
		return err
	}
	if failures > 0 {
		return fmt.Errorf("%d invalid timestamp(s)", failures)
	}
	return nil
}
