package main

import (
	"os"

	"github.com/notargets/flowvis/cli"
)

func main() {
	os.Exit(cli.Execute())
}
