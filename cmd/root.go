/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/josephgoksu/todowing/internal/app"
	"github.com/josephgoksu/todowing/internal/config"
	"github.com/josephgoksu/todowing/internal/logger"
	"github.com/spf13/cobra"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// version is the application version.
	version = "0.3.0"
)

// errAborted is returned when the user declines a confirmation prompt.
var errAborted = errors.New("aborted")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "todowing",
	Short: "todowing - a fast task list for your terminal",
	Long: `todowing keeps a simple to-do list on your machine.

Add tasks, tick them off, rename or delete them, and filter the list by
status or by text. Run "todowing tui" for the interactive view.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errAborted) {
			PrintError(rootCmd.ErrOrStderr(), userMessage(err), err)
		}
		os.Exit(1)
	}
}

// GetVersion returns the application version.
func GetVersion() string {
	return version
}

func init() {
	// Assigned here rather than in the rootCmd literal: InitConfig refers to
	// rootCmd, which would otherwise form an initialization cycle.
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		logger.SetCommand(cmd.CommandPath())
		return InitConfig()
	}

	logger.SetVersion(version)

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "", "config file (default is ./.todowing/.todowing.yaml or $HOME/.todowing.yaml)")
	pf.BoolP("verbose", "v", false, "enable verbose output")
	pf.Bool("json", false, "print machine readable JSON")
	pf.BoolP("quiet", "q", false, "only print errors")
	pf.String("data-dir", "", "directory holding the task list (default resolves .todowing, $XDG_DATA_HOME/todowing, ~/.todowing)")
	pf.String("backend", config.DefaultBackend, "storage backend: file or sqlite")
	pf.String("data-format", config.DefaultFormat, "storage format for the file backend: json or yaml")
}

// dataDir resolves the data directory for this invocation and points crash
// logs at it.
func dataDir() string {
	dir := GetConfig().Data.Dir
	if dir == "" {
		dir = config.GetDataDir()
	}
	logger.SetBasePath(dir)
	return dir
}

// openApp opens the task list configured for this invocation.
func openApp(cmd *cobra.Command) (*app.Context, error) {
	cfg := GetConfig()
	dir := dataDir()

	ctx, err := app.NewContext(app.Options{
		DataDir: dir,
		Backend: cfg.Data.Backend,
		Format:  cfg.Data.Format,
		Key:     cfg.Data.Key,
		Logger:  logger.New(cmd.ErrOrStderr(), cfg.Verbose),
	})
	if err != nil {
		return nil, fmt.Errorf("open task list in %s: %w", dir, err)
	}
	if w := ctx.LoadWarning(); w != nil {
		PrintWarning(cmd.ErrOrStderr(), "Stored tasks could not be read, starting with an empty list. The unreadable data is kept aside before the next change is saved.", w)
	}
	return ctx, nil
}

// closeApp releases ctx, reporting (not failing on) close errors.
func closeApp(cmd *cobra.Command, ctx *app.Context) {
	if err := ctx.Close(); err != nil {
		LogError(cmd.ErrOrStderr(), "close task list", err)
	}
}
