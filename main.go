package main

import (
	"os"

	"github.com/scan-io-git/nessus-export/cmd"
)

func main() {
	code := cmd.Execute()
	os.Exit(code)
}
