package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/docfoundry/docsite/internal/cmd/base"
	"github.com/docfoundry/docsite/internal/cmd/commands/check"
	"github.com/docfoundry/docsite/internal/cmd/commands/render"
	"github.com/docfoundry/docsite/internal/cmd/commands/validate"
	versioncmd "github.com/docfoundry/docsite/internal/cmd/commands/version"
)

// Commands is the mapping of all available CLI commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	baseCommand := &base.Command{
		UI:  ui,
		Log: log,
	}

	Commands = map[string]cli.CommandFactory{
		"validate": func() (cli.Command, error) {
			return &validate.Command{Command: baseCommand}, nil
		},
		"render": func() (cli.Command, error) {
			return &render.Command{Command: baseCommand}, nil
		},
		"check": func() (cli.Command, error) {
			return &check.Command{Command: baseCommand}, nil
		},
		"version": func() (cli.Command, error) {
			return &versioncmd.Command{Command: baseCommand}, nil
		},
	}
}
