package main

import (
	"asl/internal/cli"
)

func main() {
	cli.Execute()
}
