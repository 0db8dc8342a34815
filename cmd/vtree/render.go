package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vtree-dev/vtree/pkg/domjson"
	"github.com/vtree-dev/vtree/pkg/snapshot"
)

func renderCmd() *cobra.Command {
	var elideStyles bool

	cmd := &cobra.Command{
		Use:   "render <fixture.json>",
		Short: "Render a tree fixture as a canonical snapshot",
		Long: `Render reads a JSON fixture in the foreign-tree format, converts it
into the virtual node model, and prints the canonical snapshot text.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			node, err := domjson.Decode(data)
			if err != nil {
				return err
			}
			p := snapshot.New(snapshot.Config{ElideStyles: elideStyles})
			fmt.Fprint(cmd.OutOrStdout(), p.String(node))
			return nil
		},
	}

	cmd.Flags().BoolVar(&elideStyles, "elide-styles", false, "abbreviate style blocks as style={...}")
	return cmd
}
