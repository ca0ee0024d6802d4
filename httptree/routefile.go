package httptree

import (
	"net/http"
	"strings"

	"github.com/vitalvas/pathtree/routefile"
	"github.com/vitalvas/pathtree/tree"
)

// FileResolver resolves route file entries against named HTTP handlers.
// Entries listing methods become Methods handlers; entries without serve
// every method.
func FileResolver(handlers map[string]http.Handler) routefile.Resolver[*http.Request, http.Handler] {
	named := make(routefile.Registry[*http.Request, http.Handler], len(handlers))
	for name, h := range handlers {
		named[name] = AnyMethod(h)
	}

	return func(e routefile.Entry) (tree.Handler[*http.Request, http.Handler], error) {
		if _, err := named.Resolve(e); err != nil {
			return nil, err
		}
		if len(e.Methods) == 0 {
			return named[e.Handler], nil
		}

		h := handlers[e.Handler]
		m := make(Methods, len(e.Methods))
		for _, method := range e.Methods {
			m[strings.ToUpper(method)] = h
		}
		return m, nil
	}
}

// LoadRouteFile builds the tree described by the route file at path.
func LoadRouteFile(path string, handlers map[string]http.Handler) (*Node, error) {
	f, err := routefile.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return routefile.Build(f, FileResolver(handlers))
}
