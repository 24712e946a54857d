package render

import (
	"encoding/json"
	"fmt"

	"github.com/docfoundry/docsite/internal/cmd/base"
	"github.com/docfoundry/docsite/internal/config"
	"github.com/docfoundry/docsite/internal/render"
)

type Command struct {
	*base.Command

	FlagConfig string
}

func (c *Command) Synopsis() string {
	return "Print the build context consumed by the site generator"
}

func (c *Command) Help() string {
	return `Usage: docsite render [options]

  Load the site configuration and print the JSON build context the static
  site generator embeds into its output: page metadata, navigation links,
  and the search widget bootstrap (when search is enabled).

` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet("render")

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

	out, err := json.MarshalIndent(render.NewBuildContext(cfg), "", "  ")
	if err != nil {
		c.UI.Error(fmt.Sprintf("error encoding build context: %v", err))
		return 1
	}

	c.UI.Output(string(out))
	return 0
}
