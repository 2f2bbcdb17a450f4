package main

import "github.com/Simplici0/bakersmath/internal/cli"

func main() {
	cli.Execute()
}
