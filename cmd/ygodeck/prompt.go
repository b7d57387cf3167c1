package main

import (
	"bufio"
	"fmt"
	"strings"

	colorize "github.com/fatih/color"
)

// ask prints question and reads a yes/no answer. Anything but yes is no.
func (c *cli) ask(question string) bool {
	fmt.Fprintf(c.out, "%s %s ", colorize.YellowString(question), colorize.HiBlackString("[s/N]"))

	line, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(c.out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "s", "sim", "y", "yes":
		return true
	}
	return false
}
