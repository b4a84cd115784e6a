// Package main is the entry point for the rexharness CLI.
package main

import (
	"os"

	"github.com/AndreyAkinshin/rexharness/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
