// Package tree implements an immutable route tree that maps a sequence of
// path segments to a handler.
//
// The tree is generic over the request type passed through to handlers and
// the result type they return. Neither is interpreted by the tree.
//
// # Building
//
// Trees are assembled with a Builder, whose nesting mirrors the tree:
//
//	root, err := tree.NewBuilder[*Req, *Res]().
//		Handler(home).
//		Path("projects", tree.NewBuilder[*Req, *Res]().
//			Handler(listProjects).
//			Param(segment.Number("projectId"), tree.NewBuilder[*Req, *Res]().
//				Handler(showProject))).
//		Build()
//
// or one route at a time from a template and merged:
//
//	a := tree.MustParse[*Req, *Res]("/projects/{projectId:int}", showProject)
//	b := tree.MustParse[*Req, *Res]("/pictures/{path...}", servePicture)
//	root := tree.Merge(a, b)
//
// Invalid literal names, a second param or wildcard child on one node and
// malformed templates are configuration errors, reported by Build or Parse.
// IsConfigError identifies them by text code.
//
// # Matching
//
// Match consumes the segments left to right. At every node a literal child
// wins over the param child, which wins over the wildcard child; a param
// rejecting its segment ends the match without trying the wildcard:
//
//	res, ok := root.Match(req, tree.SplitPath("/projects/123"))
//
// A handler receives a *Match with the request and the extracted params:
//
//	id, _ := m.Int("projectId")
//
// # Merging
//
// Merge returns a new tree combining two trees; neither input changes, so
// trees already in use keep working. Handlers found at the same position in
// both trees are combined through Handler.Merge.
//
// # Updating at runtime
//
// Table holds the served tree. Add merges a fragment into it and swaps the
// root atomically; matches never lock.
//
//	t := tree.NewTable(root, tree.WithLogger(logger))
//	err := t.Add(tree.MustParse[*Req, *Res]("/bar", bar))
package tree
