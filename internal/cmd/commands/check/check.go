package check

import (
	"context"
	"fmt"
	"time"

	"github.com/docfoundry/docsite/internal/cmd/base"
	"github.com/docfoundry/docsite/internal/config"
	"github.com/docfoundry/docsite/pkg/sitesearch"
)

const pingTimeout = 10 * time.Second

type Command struct {
	*base.Command

	FlagConfig string
}

func (c *Command) Synopsis() string {
	return "Verify the configured search credentials against Algolia"
}

func (c *Command) Help() string {
	return `Usage: docsite check [options]

  Load the site configuration and, when search is enabled, verify the
  Algolia credentials by fetching the configured index's settings. Reports
  that search is disabled when any credential field is empty.

` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet("check")

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

	svc := sitesearch.New(cfg, c.Log.Named("search"))
	if !svc.Enabled() {
		c.UI.Warn("search is disabled: algolia credentials are incomplete")
		return 0
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := svc.Ping(ctx); err != nil {
		c.UI.Error(fmt.Sprintf("search check failed: %v", err))
		return 1
	}

	c.UI.Info(fmt.Sprintf("algolia index %q is reachable", cfg.Algolia().IndexName))
	return 0
}
