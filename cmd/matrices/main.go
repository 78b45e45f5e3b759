// SPDX-License-Identifier: MIT

// Command matrices evaluates matrix expressions step by step and renders
// printable reports.
package main

import (
	"os"

	"github.com/rmns82839-rgb/Matrices/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
