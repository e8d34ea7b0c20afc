/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/josephgoksu/todowing/internal/ui"
	"github.com/spf13/cobra"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show how many tasks are active and completed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer closeApp(cmd, ctx)

		summary := describe(ctx).Summary
		if isJSON() {
			return printJSON(cmd.OutOrStdout(), summary)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), ui.RenderSummary(summary))
		return err
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
