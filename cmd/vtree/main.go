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
	rootCmd := &cobra.Command{
		Use:   "vtree",
		Short: "Inspect virtual node trees as canonical snapshots",
		Long: `vtree renders virtual node fixtures into their canonical,
diffable textual form.

Fixtures are JSON documents in the foreign-tree format: elements carry a
tagName with attributes, style, key, and children fields; bare strings are
text nodes; maps with a widgetId are opaque widgets.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		renderCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
