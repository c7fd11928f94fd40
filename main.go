// main package for testwatch command-line tool
// Package main is the entry point for the testwatch CLI.
package main

import "testwatch.dev/pkg/testwatch/cmd"

func main() {
	cmd.Execute()
}
