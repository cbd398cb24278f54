package main

import "github.com/Project-Sylos/Fixture/internal/cli"

func main() {
	cli.Execute()
}
