// Package httptree serves net/http requests from a route tree.
//
// Routes map to Methods handlers, which dispatch on the request method and
// merge by method when trees are combined:
//
//	table := tree.NewTable[*http.Request, http.Handler](nil)
//	r := httptree.NewRouter(table)
//	_ = r.Handle(http.MethodGet, "/projects/{id:int}", showProject)
//	_ = r.Handle(http.MethodPost, "/projects/{id:int}", updateProject)
//	http.ListenAndServe(":8080", r)
//
// Inside a handler, the extracted params are available from the request:
//
//	id, _ := httptree.Params(r).Int("id")
package httptree
