// Package base carries the shared pieces every CLI command embeds: the UI,
// the logger, and a flag set wrapper that renders its own help block.
package base

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
)

// Command is embedded by all CLI commands.
type Command struct {
	// UI is used for all command output.
	UI cli.Ui

	// Log is the logger for the command.
	Log hclog.Logger
}

// FlagSet wraps flag.FlagSet so command Help output can include the flag
// usage block.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet returns a FlagSet that reports errors through the return value
// of Parse instead of printing to stderr.
func NewFlagSet(name string) *FlagSet {
	f := flag.NewFlagSet(name, flag.ContinueOnError)
	f.SetOutput(io.Discard)
	return &FlagSet{FlagSet: f}
}

// Help returns the formatted usage for all registered flags.
func (f *FlagSet) Help() string {
	var b strings.Builder
	b.WriteString("Options:\n")
	f.VisitAll(func(fl *flag.Flag) {
		fmt.Fprintf(&b, "  -%s\n", fl.Name)
		fmt.Fprintf(&b, "      %s", fl.Usage)
		if fl.DefValue != "" {
			fmt.Fprintf(&b, " (default: %s)", fl.DefValue)
		}
		b.WriteString("\n")
	})
	return b.String()
}
