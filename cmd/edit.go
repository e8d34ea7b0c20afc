/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/josephgoksu/todowing/internal/ui"
	"github.com/spf13/cobra"
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:     "edit <id> <title...>",
	Aliases: []string{"rename"},
	Short:   "Change the title of a task",
	Example: `  todowing edit 1712345678901 Buy oat milk`,
	Args:    cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseTaskID(args[0])
		if err != nil {
			return err
		}
		ctx, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer closeApp(cmd, ctx)

		res, err := ctx.RenameTask(id, strings.Join(args[1:], " "))
		if err != nil {
			return fmt.Errorf("rename task: %w", err)
		}
		return reportResult(cmd, res, fmt.Sprintf("✓ Renamed #%d: %s", id, ui.DisplayTitle(res.Task.Title)))
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
