// Package main is the entry point for the aoc2023 CLI.
package main

import "github.com/RAnders00/advent-of-code-2023/cmd"

func main() {
	cmd.Execute()
}
