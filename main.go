// Package main is the entry point for the optametrics CLI tool, which
// preprocesses Opta MA3 match event feeds and computes sequence and player
// metrics.
package main

import "github.com/matchlens/go-opta-metrics/cmd"

func main() {
	cmd.Execute()
}
