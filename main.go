package main

import (
	"github.com/mingle-social/cli/internal/cmd"
)

func main() {
	cmd.Execute()
}
