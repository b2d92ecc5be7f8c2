// Command carrierlock-manpage generates man pages for carrierlock. With no
// arguments it prints the page of the root command. Given a directory it
// writes one page per command there.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/carrierlock/internal/cli"
	"github.com/arthur-debert/carrierlock/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd()
	header := &doc.GenManHeader{
		Title:   "CARRIERLOCK",
		Section: "1",
		Source:  "carrierlock " + version.Version,
		Manual:  "carrierlock manual",
	}

	var err error
	switch len(os.Args) {
	case 1:
		err = doc.GenMan(rootCmd, header, os.Stdout)
	case 2:
		dir := os.Args[1]
		if err = os.MkdirAll(dir, 0755); err == nil {
			err = doc.GenManTree(rootCmd, header, dir)
		}
	default:
		fmt.Fprintln(os.Stderr, "usage: carrierlock-manpage [DIR]")
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man pages: %v\n", err)
		os.Exit(1)
	}
}
