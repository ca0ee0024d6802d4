package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pathtree",
		Short: "Inspect and serve route files",
		Long: `pathtree loads YAML route files into a route tree.

It lists the routes a file defines, shows which route a path resolves
to and with which params, and can serve the file over HTTP.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		routesCmd(),
		matchCmd(),
		serveCmd(),
		versionCmd(),
	)

	return rootCmd
}
