package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/josephgoksu/todowing/internal/app"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func isJSON() bool {
	return viper.GetBool("json")
}

func isQuiet() bool {
	return viper.GetBool("quiet")
}

func printJSON(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

func parseTaskID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task id %q", arg)
	}
	return id, nil
}

// confirmOrAbort asks on the command's input. JSON mode never prompts.
func confirmOrAbort(cmd *cobra.Command, prompt string) bool {
	if isJSON() {
		return true
	}
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))
	if response != "y" && response != "yes" {
		fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
		return false
	}
	return true
}

// reportResult prints the outcome of a mutation: the result as JSON, or
// msg (unless quiet), plus a warning when the change was not saved.
func reportResult(cmd *cobra.Command, res app.TaskResult, msg string) error {
	if res.Warning != "" {
		PrintWarning(cmd.ErrOrStderr(), "The change was applied but could not be saved.", fmt.Errorf("%s", res.Warning))
	}
	if isJSON() {
		return printJSON(cmd.OutOrStdout(), res)
	}
	if !isQuiet() {
		fmt.Fprintln(cmd.OutOrStdout(), msg)
	}
	return nil
}
