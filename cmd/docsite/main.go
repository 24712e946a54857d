package main

import (
	"os"

	"github.com/docfoundry/docsite/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
