package main

import "github.com/rocketscienceinc/tictactoe-api/internal/cli"

// main - is the entry point of the application.
func main() {
	cli.Execute()
}
