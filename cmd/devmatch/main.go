// Command devmatch runs the DevMatch API.
//
// Usage:
//
//	devmatch serve     # apply migrations (outside local) and serve HTTP
//	devmatch migrate   # apply migrations and exit
//
// Configuration is read from DEVMATCH_* environment variables and an
// optional .env file in the working directory.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
