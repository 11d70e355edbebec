package main

import (
	"os"

	"github.com/UnendingLoop/minigrep/internal/appmode"
)

func main() {
	os.Exit(appmode.RunCLI(os.Args[1:], os.LookupEnv, os.Stdout, os.Stderr))
}
