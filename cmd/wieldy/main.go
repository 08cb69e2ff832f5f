package main

import (
	"os"

	"github.com/arthur-debert/wieldy/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
