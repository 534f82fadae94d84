// Package main is the entry point for the wishlists CLI application.
package main

import (
	"fmt"
	"os"

	"github.com/oss-wishlist/wishlists/cmd"
	"github.com/oss-wishlist/wishlists/internal/logging"
)

// main is the entry point of the application.
// It executes the root command and handles any errors that occur.
func main() {
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	logging.Info("starting wishlists cli", "version", "1.0.0", "log_level", logLevel)

	if err := cmd.Execute(); err != nil {
		logging.Error("command execution failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
