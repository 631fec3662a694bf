package main

import "github.com/Digital-Shane/path-tidy/internal/cli"

func main() {
	cli.Execute()
}
