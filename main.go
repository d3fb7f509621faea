package main

import (
	"os"

	"minigrep/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
