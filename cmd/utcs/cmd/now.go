package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"utcs.dev/utcs/stamp"
)

var nowPrecision string

var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Print the current UTC instant in canonical form",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := stamp.ParsePrecision(nowPrecision)
		if err != nil {
			return err
		}
		fmt.Println(stamp.Format(stamp.SystemNow(), p))
		return nil
	},
}

func init() {
	nowCmd.Flags().StringVarP(&nowPrecision, "precision", "p", "s", "output precision: s, ms, us, or ns")
	rootCmd.AddCommand(nowCmd)
}
