package main

import "github.com/mindreel/mindreel/internal/cli"

func main() {
	cli.Main()
}
