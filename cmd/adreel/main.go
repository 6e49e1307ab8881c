package main

import (
	"fmt"
	"os"
)

// Version is set at build time: -ldflags "-X main.Version=..."
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "[-] %v\n", err)
		os.Exit(1)
	}
}
