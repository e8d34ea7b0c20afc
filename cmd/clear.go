/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	clearAll bool
	clearYes bool
)

// clearCmd represents the clear command
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove completed tasks, or every task with --all",
	Long: `Remove tasks from the list.

By default only completed tasks are removed. --all removes every task and
asks for confirmation unless --yes is given.

Examples:
  todowing clear              # Clear completed tasks (safe default)
  todowing clear --all        # Clear all tasks (with confirmation)
  todowing clear --all --yes  # Clear all tasks without confirmation`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer closeApp(cmd, ctx)

		if clearAll && !clearYes && ctx.Store.Len() > 0 {
			prompt := fmt.Sprintf("Delete all %d tasks? This cannot be undone. [y/N]: ", ctx.Store.Len())
			if !confirmOrAbort(cmd, prompt) {
				return errAborted
			}
		}

		res, err := ctx.ClearTasks(clearAll)
		if err != nil {
			return fmt.Errorf("clear tasks: %w", err)
		}
		what := "completed tasks"
		if clearAll {
			what = "tasks"
		}
		return reportResult(cmd, res, fmt.Sprintf("✓ Cleared %d %s", res.Removed, what))
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	clearCmd.Flags().BoolVar(&clearAll, "all", false, "remove every task, not only completed ones")
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "do not ask for confirmation")
}
