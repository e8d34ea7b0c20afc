/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"errors"

	"github.com/josephgoksu/todowing/internal/ui"
	"github.com/josephgoksu/todowing/internal/watch"
	"github.com/spf13/cobra"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:     "tui",
	Aliases: []string{"ui", "i"},
	Short:   "Open the interactive task list",
	Long: `Open the interactive task list.

Keys: a add, space toggle, e edit, d delete, / search, tab filter,
C clear completed, ? help, q quit. Changes made by other todowing
processes are picked up automatically.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !ui.IsInteractive() {
			return errors.New("tui needs a terminal; use \"todowing list\" in scripts")
		}
		ctx, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer closeApp(cmd, ctx)

		var opts []ui.ControllerOption
		if path := ctx.DataPath(); path != "" {
			w, err := watch.New(path, watch.WithLogger(logFor(cmd)))
			if err == nil {
				err = w.Start(cmd.Context())
			}
			if err != nil {
				LogError(cmd.ErrOrStderr(), "live reload disabled", err)
			} else {
				defer w.Stop()
				opts = append(opts, ui.WithChanges(w.Changes()))
			}
		}
		return ui.RunTUI(ctx, opts...)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
