/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-pkgz/lgr"
	"github.com/josephgoksu/todowing/internal/app"
	"github.com/josephgoksu/todowing/internal/logger"
	"github.com/josephgoksu/todowing/internal/ui"
	"github.com/josephgoksu/todowing/internal/watch"
	"github.com/josephgoksu/todowing/models"
	"github.com/spf13/cobra"
)

var watchStatus string

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print the list and reprint it whenever it changes",
	Long: `Print the task list, then print it again each time another todowing
process changes it. Stop with Ctrl+C.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer closeApp(cmd, ctx)
		if ctx.DataPath() == "" {
			return fmt.Errorf("watch is not supported by the %s backend", GetConfig().Data.Backend)
		}

		sigCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		w, err := watch.New(ctx.DataPath(), watch.WithLogger(logFor(cmd)))
		if err != nil {
			return err
		}
		if err := w.Start(sigCtx); err != nil {
			return err
		}
		defer w.Stop()

		return runWatchLoop(sigCtx, cmd, ctx, w.Changes())
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVarP(&watchStatus, "status", "s", "all", "show all, active or completed tasks")
}

// runWatchLoop prints the view once and again after every change until ctx
// is done.
func runWatchLoop(ctx context.Context, cmd *cobra.Command, appCtx *app.Context, changes <-chan struct{}) error {
	status, err := models.ParseStatusFilter(watchStatus)
	if err != nil {
		return err
	}
	appCtx.View.Status = status
	if err := printWatchFrame(cmd, appCtx); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changes:
			changed, err := appCtx.Reload()
			if err != nil {
				PrintWarning(cmd.ErrOrStderr(), "Could not reload the task list.", err)
				continue
			}
			if !changed {
				continue
			}
			if err := printWatchFrame(cmd, appCtx); err != nil {
				return err
			}
		}
	}
}

func printWatchFrame(cmd *cobra.Command, appCtx *app.Context) error {
	if ui.IsInteractive() && !isJSON() {
		// clear screen, cursor home
		fmt.Fprint(cmd.OutOrStdout(), "\x1b[2J\x1b[H")
	}
	return printDescription(cmd, appCtx.Describe())
}

func logFor(cmd *cobra.Command) lgr.L {
	return logger.New(cmd.ErrOrStderr(), GetConfig().Verbose)
}
