package version

import (
	"fmt"

	"github.com/docfoundry/docsite/internal/cmd/base"
	"github.com/docfoundry/docsite/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the version"
}

func (c *Command) Help() string {
	return "Usage: docsite version\n\n  Print the version of this binary.\n"
}

func (c *Command) Run(args []string) int {
	c.UI.Output(fmt.Sprintf("docsite %s", version.Version))
	return 0
}
