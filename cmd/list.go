/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/josephgoksu/todowing/internal/app"
	"github.com/josephgoksu/todowing/internal/ui"
	"github.com/josephgoksu/todowing/internal/view"
	"github.com/josephgoksu/todowing/models"
	"github.com/spf13/cobra"
)

var (
	listStatus string
	listSearch string
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks, newest first",
	Long: `List tasks, newest first.

Examples:
  todowing list
  todowing list --status active
  todowing list --search milk`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd, listStatus, listSearch)
	},
}

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query...>",
	Short: "List tasks whose title contains the query (case-insensitive)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd, string(models.FilterAll), strings.Join(args, " "))
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)

	listCmd.Flags().StringVarP(&listStatus, "status", "s", string(models.FilterAll), "show all, active or completed tasks")
	listCmd.Flags().StringVar(&listSearch, "search", "", "only show tasks whose title contains this text")
}

func runList(cmd *cobra.Command, status, query string) error {
	filter, err := models.ParseStatusFilter(status)
	if err != nil {
		return err
	}
	ctx, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer closeApp(cmd, ctx)

	ctx.View.Status = filter
	ctx.View.SearchQuery = query
	return printDescription(cmd, ctx.Describe())
}

// printDescription writes d in the format the invocation asks for.
func printDescription(cmd *cobra.Command, d view.Description) error {
	out := cmd.OutOrStdout()
	switch {
	case isJSON():
		return printJSON(out, d)
	case ui.IsInteractive():
		_, err := fmt.Fprint(out, ui.RenderDescription(d, ui.TerminalWidth()))
		return err
	default:
		return printPlain(out, cmd.ErrOrStderr(), d)
	}
}

// printPlain writes tab separated rows for pipes. Empty states go to errOut
// so the row stream stays clean.
func printPlain(out, errOut io.Writer, d view.Description) error {
	if d.Empty != view.EmptyNone {
		if !isQuiet() {
			title, _ := d.Empty.Message()
			fmt.Fprintln(errOut, title)
		}
		return nil
	}
	_, err := fmt.Fprint(out, ui.RenderPlain(d))
	return err
}

// describe is shared by commands that render the default view.
func describe(ctx *app.Context) view.Description {
	ctx.View.Reset()
	return ctx.Describe()
}
