package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"utcs.dev/utcs/stamp"
)

var lenient bool

var canonCmd = &cobra.Command{
	Use:   "canon [timestamp...]",
	Short: "Canonicalize timestamps from arguments or stdin",
	Long: `Canonicalize timestamps. Inputs come from the arguments, or from
stdin (one per line) when no arguments are given.

Strict mode rejects any non-canonical form. With --lenient, surrounding
whitespace, lowercase designators, and a space in place of 'T' are repaired;
everything else is still rejected.`,
	RunE: runCanon,
}

func init() {
	canonCmd.Flags().BoolVar(&lenient, "lenient", false, "tolerate minor byte-level deviations")
	rootCmd.AddCommand(canonCmd)
}

func runCanon(cmd *cobra.Command, args []string) error {
	return eachInput(args, func(in string) error {
		var (
			out []byte
			err error
		)
		if lenient {
			out, err = stamp.Normalize([]byte(in))
		} else {
			out, err = stamp.Canonicalize([]byte(in))
		}
		if err != nil {
			log.Debug().Str("input", in).Str("rule", stamp.RuleID(err)).Msg("rejected")
			return err
		}
		fmt.Println(string(out))
		return nil
	})
}

// eachInput applies fn to each argument, or to each stdin line when no
// arguments are given. The first failure stops processing.
func eachInput(args []string, fn func(string) error) error {
	if len(args) > 0 {
		for _, a := range args {
			if err := fn(a); err != nil {
				return err
			}
		}
		return nil
	}
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	return sc.Err()
}
