package main

import (
	"os"

	"github.com/bomgrid/bomcheck/cmd"
)

func main() {
	code := cmd.Execute()
	os.Exit(code)
}
