/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/josephgoksu/todowing/internal/app"
	"github.com/josephgoksu/todowing/internal/ui"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string
)

// createExportFile opens the -o target.
var createExportFile = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the task list as JSON, YAML or an HTML page",
	Long: `Export every task with a document id and timestamp.

Examples:
  todowing export > todos.json
  todowing export --format yaml -o todos.yaml
  todowing export --format html -o todos.html`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "json, yaml or html")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to this file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) error {
	format := strings.ToLower(exportFormat)
	switch format {
	case "json", "yaml", "yml", "html":
	default:
		return fmt.Errorf("unsupported export format %q (want json, yaml or html)", exportFormat)
	}

	ctx, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer closeApp(cmd, ctx)

	doc, err := ctx.Export("todowing " + version)
	if err != nil {
		return err
	}

	write := func(w io.Writer) error {
		if format == "html" {
			return ui.WriteHTML(w, describe(ctx), doc.Metadata)
		}
		return app.WriteExport(w, doc, format)
	}
	if exportOutput == "" {
		err = write(cmd.OutOrStdout())
	} else {
		err = writeExportFile(exportOutput, write)
	}
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	if exportOutput != "" && !isQuiet() {
		fmt.Fprintf(cmd.ErrOrStderr(), "✓ Exported %d tasks to %s\n", len(doc.Tasks), exportOutput)
	}
	return nil
}

// writeExportFile writes to path. A failed close fails the export, since
// the file may be incomplete.
func writeExportFile(path string, write func(io.Writer) error) (err error) {
	f, err := createExportFile(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return write(f)
}
