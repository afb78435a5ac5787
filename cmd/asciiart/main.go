package main

import (
	"os"

	utils "github.com/nebbyJammin/imgascii/cmd/internal/cmd_utils"
)

func main() {
	os.Exit(utils.Run(os.Args, os.Stdout, os.Stderr))
}
