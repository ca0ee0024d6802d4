package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vitalvas/pathtree/tree"
)

func matchCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "match <path>...",
		Short: "Resolve paths against a route file",
		Long: `Resolve each path against the routes of a route file and print the
handler and params it matches. Exits with an error when a path matches
no route.

Example:
  pathtree match -f routes.yaml /projects/12 /static/css/site.css`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadTree(file)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			misses := 0
			for _, path := range args {
				res, ok := root.Match(struct{}{}, tree.SplitPath(path))
				if !ok {
					misses++
					res = "no match"
				}
				fmt.Fprintf(out, "%s -> %s\n", path, res)
			}

			if misses > 0 {
				return fmt.Errorf("%d of %d paths matched no route", misses, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "routes.yaml", "Route file")

	return cmd
}
