package validate

import (
	"fmt"

	"github.com/docfoundry/docsite/internal/cmd/base"
	"github.com/docfoundry/docsite/internal/config"
)

type Command struct {
	*base.Command

	FlagConfig string
}

func (c *Command) Synopsis() string {
	return "Validate the site configuration"
}

func (c *Command) Help() string {
	return `Usage: docsite validate [options]

  Load the site configuration, apply environment overrides, and run shape
  validation. All field problems are reported at once; the exit code is
  non-zero when the configuration is invalid.

` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet("validate")

	f.StringVar(
		&c.FlagConfig, "config", config.DefaultPath,
		"Path to the site configuration file",
	)

	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	cfg, err := config.Load(c.FlagConfig)
	if err != nil {
		c.UI.Error(fmt.Sprintf("configuration invalid: %v", err))
		return 1
	}

	c.UI.Info(fmt.Sprintf("%s is valid (search enabled: %t)", c.FlagConfig, cfg.SearchEnabled()))
	return 0
}
