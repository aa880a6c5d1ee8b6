package main

import (
	"os"

	// Import for its init() command registrations
	_ "github.com/arthur-debert/wsinit/pkg/wscommands"
)

func main() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
