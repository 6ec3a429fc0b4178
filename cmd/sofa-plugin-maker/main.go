// Package main is the entry point for sofa-plugin-maker.
package main

import (
	"os"

	"github.com/sofa-framework/plugin-maker/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
