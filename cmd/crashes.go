/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/josephgoksu/todowing/internal/logger"
	"github.com/josephgoksu/todowing/internal/ui"
	"github.com/spf13/cobra"
)

var crashesShow bool

// crashesCmd represents the crashes command
var crashesCmd = &cobra.Command{
	Use:   "crashes",
	Short: "List crash logs left by unexpected errors",
	Long: `List the crash logs kept in the data directory, newest first.

Examples:
  todowing crashes
  todowing crashes --show   # print the newest crash log in full`,
	Args: cobra.NoArgs,
	RunE: runCrashes,
}

func init() {
	rootCmd.AddCommand(crashesCmd)
	crashesCmd.Flags().BoolVar(&crashesShow, "show", false, "print the newest crash log in full")
}

type crashEntry struct {
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Command   string    `json:"command"`
	Panic     string    `json:"panic"`
	stack     string
}

// loadCrashes reads every crash log, newest first. Unreadable logs are
// skipped.
func loadCrashes(cmd *cobra.Command) ([]crashEntry, error) {
	dataDir()
	paths, err := logger.ListCrashLogs()
	if err != nil {
		return nil, fmt.Errorf("list crash logs: %w", err)
	}
	entries := make([]crashEntry, 0, len(paths))
	for i := len(paths) - 1; i >= 0; i-- {
		log, err := logger.ReadCrashLog(paths[i])
		if err != nil {
			LogError(cmd.ErrOrStderr(), "skip crash log", err)
			continue
		}
		entries = append(entries, crashEntry{
			Path:      paths[i],
			Timestamp: log.Timestamp,
			Version:   log.Version,
			Command:   log.Command,
			Panic:     log.PanicValue,
			stack:     log.StackTrace,
		})
	}
	return entries, nil
}

func runCrashes(cmd *cobra.Command, args []string) error {
	entries, err := loadCrashes(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if isJSON() {
		return printJSON(out, entries)
	}
	if len(entries) == 0 {
		if !isQuiet() {
			fmt.Fprintln(out, "No crash logs.")
		}
		return nil
	}

	if crashesShow {
		c := entries[0]
		body := fmt.Sprintf("Version: %s\nCommand: %s\nPanic:   %s\nFile:    %s\n\n%s",
			c.Version, c.Command, ui.StyleError.Render(c.Panic), c.Path, c.stack)
		_, err := fmt.Fprintln(out, ui.RenderPanel("Crash at "+c.Timestamp.Format(time.DateTime), body))
		return err
	}

	table := &ui.Table{
		Headers:  []string{"When", "Command", "Panic", "File"},
		MaxWidth: 60,
		CellStyle: func(row, col int) lipgloss.Style {
			if col == 2 {
				return ui.StyleError
			}
			return ui.StyleText
		},
	}
	for _, c := range entries {
		table.Rows = append(table.Rows, []string{c.Timestamp.Format(time.DateTime), c.Command, c.Panic, c.Path})
	}
	_, err = fmt.Fprint(out, table.Render())
	return err
}
