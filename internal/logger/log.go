package logger

import (
	"io"

	"github.com/go-pkgz/lgr"
)

// New returns the application logger writing to w. DEBUG lines are dropped
// unless verbose is set.
func New(w io.Writer, verbose bool) lgr.L {
	opts := []lgr.Option{lgr.Out(w), lgr.Err(w), lgr.Msec, lgr.LevelBraces}
	if verbose {
		opts = append(opts, lgr.Debug)
	}
	return lgr.New(opts...)
}
