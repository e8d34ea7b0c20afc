package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/josephgoksu/todowing/internal/app"
	"github.com/josephgoksu/todowing/internal/ui"
	"github.com/spf13/viper"
)

// PrintError prints an error message without exiting. In verbose mode the
// technical error is printed instead of the user-friendly message.
func PrintError(w io.Writer, userMsg string, technicalErr error) {
	prefix := "Error:"
	if ui.IsTerminalWriter(w) {
		prefix = ui.StyleError.Render(prefix)
	}
	if viper.GetBool("verbose") && technicalErr != nil {
		fmt.Fprintf(w, "%s %v\n", prefix, technicalErr)
		return
	}
	fmt.Fprintln(w, prefix+" "+userMsg)
}

// PrintWarning reports a problem the command recovered from. On a terminal
// it is drawn as a warning panel.
func PrintWarning(w io.Writer, userMsg string, technicalErr error) {
	if viper.GetBool("quiet") {
		return
	}
	msg := userMsg
	if viper.GetBool("verbose") && technicalErr != nil {
		msg = fmt.Sprintf("%s (%v)", userMsg, technicalErr)
	}
	if ui.IsTerminalWriter(w) {
		fmt.Fprintln(w, ui.RenderWarningPanel("Warning", msg))
		return
	}
	fmt.Fprintln(w, "Warning: "+msg)
}

// LogError logs an error only in verbose mode.
func LogError(w io.Writer, msg string, err error) {
	if !viper.GetBool("verbose") {
		return
	}
	if err != nil {
		fmt.Fprintf(w, "[DEBUG] %s: %v\n", msg, err)
	} else {
		fmt.Fprintf(w, "[DEBUG] %s\n", msg)
	}
}

// userMessage turns known errors into a short explanation.
func userMessage(err error) string {
	var verrs validator.ValidationErrors
	switch {
	case app.IsNotFound(err):
		return "No task with that ID."
	case app.IsValidation(err):
		return "Task title cannot be empty."
	case errors.As(err, &verrs):
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, strings.ToLower(fe.Namespace()))
		}
		return "Invalid configuration value for " + strings.Join(fields, ", ") + "."
	default:
		return err.Error()
	}
}
