package main

import (
	"flatkit/cmd/inventory/cmd"
	"flatkit/internal/cli"
)

func main() {
	cli.Execute(cmd.NewRootCmd())
}
