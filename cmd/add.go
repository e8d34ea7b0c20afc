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

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:     "add <title...>",
	Aliases: []string{"new", "a"},
	Short:   "Add a task to the top of the list",
	Long: `Add a task. All arguments are joined into the title.

Examples:
  todowing add Buy milk
  todowing add "Call <Alice> & Bob"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer closeApp(cmd, ctx)

	res, err := ctx.AddTask(strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("add task: %w", err)
	}
	return reportResult(cmd, res, fmt.Sprintf("✓ Added #%d: %s", res.Task.ID, ui.DisplayTitle(res.Task.Title)))
}
