/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/josephgoksu/todowing/internal/ui"
	"github.com/spf13/cobra"
)

// doneCmd represents the done command
var doneCmd = &cobra.Command{
	Use:     "done <id>",
	Aliases: []string{"toggle"},
	Short:   "Toggle a task between active and completed",
	Example: `  todowing done 1712345678901`,
	Args:    cobra.ExactArgs(1),
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

		res, err := ctx.ToggleTask(id)
		if err != nil {
			return fmt.Errorf("toggle task: %w", err)
		}
		state := "active"
		if res.Task.Completed {
			state = "completed"
		}
		return reportResult(cmd, res, fmt.Sprintf("✓ Marked #%d %s: %s", id, state, ui.DisplayTitle(res.Task.Title)))
	},
}

func init() {
	rootCmd.AddCommand(doneCmd)
}
