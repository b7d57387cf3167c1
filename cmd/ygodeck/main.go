package main

import (
	"fmt"
	"os"

	colorize "github.com/fatih/color"
	"golang.org/x/term"

	"ygodeck/internal/diag"
)

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		colorize.NoColor = true
	}

	if err := newCLI(os.Stdin, os.Stdout, os.Stderr).Execute(os.Args[1:]...); err != nil {
		fmt.Fprintln(os.Stderr, colorize.RedString(diag.Message(err, "")))
		os.Exit(1)
	}
}
