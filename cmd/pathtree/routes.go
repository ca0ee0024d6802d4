package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vitalvas/pathtree/routefile"
	"github.com/vitalvas/pathtree/tree"
)

// nameHandler identifies a route file handler by name and renders the
// params of a match.
type nameHandler string

func (h nameHandler) Call(m *tree.Match[struct{}]) string {
	var sb strings.Builder
	sb.WriteString(string(h))

	var params []string
	for name, v := range m.Params.Ints() {
		params = append(params, fmt.Sprintf("%s=%d", name, v))
	}
	for name, v := range m.Params.Strings() {
		params = append(params, fmt.Sprintf("%s=%q", name, v))
	}
	for name, v := range m.Params.Values() {
		params = append(params, fmt.Sprintf("%s=%v", name, v))
	}
	sort.Strings(params)

	for _, p := range params {
		sb.WriteString(" ")
		sb.WriteString(p)
	}
	if w := m.Wildcard(); len(w) > 0 {
		fmt.Fprintf(&sb, " *=%s", strings.Join(w, "/"))
	}

	return sb.String()
}

// Merge joins the names of entries sharing a route, e.g. one per method.
func (h nameHandler) Merge(other tree.Handler[struct{}, string]) tree.Handler[struct{}, string] {
	o, ok := other.(nameHandler)
	if !ok {
		return other
	}
	return h + "," + o
}

func resolveName(e routefile.Entry) (tree.Handler[struct{}, string], error) {
	return nameHandler(e.Handler), nil
}

func loadTree(path string) (*tree.Node[struct{}, string], error) {
	f, err := routefile.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return routefile.Build(f, resolveName)
}

func routesCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "List the routes of a route file",
		Long: `List every route of a route file in match order, with the name of
its handler.

Example:
  pathtree routes -f routes.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := loadTree(file)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			return root.Walk(func(route tree.Route[struct{}, string]) error {
				_, err := fmt.Fprintf(out, "%-40s %s\n", route.Template, route.Handler.(nameHandler))
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "routes.yaml", "Route file")

	return cmd
}
