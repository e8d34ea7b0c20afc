/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/josephgoksu/todowing/internal/ui"
	"github.com/spf13/cobra"
)

// deleteCmd represents the rm command
var deleteCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete", "del"},
	Short:   "Delete a task",
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

		res, err := ctx.DeleteTask(id)
		if err != nil {
			return fmt.Errorf("delete task: %w", err)
		}
		return reportResult(cmd, res, fmt.Sprintf("✓ Deleted #%d: %s", id, ui.DisplayTitle(res.Task.Title)))
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
