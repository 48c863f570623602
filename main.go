package main

import (
	"os"

	"github.com/hkawai/kioku/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
