package main

import (
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/cigen/internal/cli"
	"github.com/arthur-debert/cigen/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "CIGEN",
		Section: "1",
		Source:  "cigen " + version.Version,
		Manual:  "cigen manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
