package main

import "github.com/scoretab/scoretab/internal/cli"

func main() {
	cli.Execute()
}
