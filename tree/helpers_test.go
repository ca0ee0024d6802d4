package tree

import "fmt"

type testReq struct {
	method string
	extras string
}

// textHandler returns a fixed text. Merging keeps the other handler.
type textHandler string

func (h textHandler) Call(_ *Match[testReq]) string {
	return string(h)
}

func (h textHandler) Merge(other Handler[testReq, string]) Handler[testReq, string] {
	return other
}

// funcHandler computes its result from the match. Merging keeps the other
// handler.
type funcHandler func(m *Match[testReq]) string

func (h funcHandler) Call(m *Match[testReq]) string {
	return h(m)
}

func (h funcHandler) Merge(other Handler[testReq, string]) Handler[testReq, string] {
	return other
}

// methodHandler dispatches on the request method; merging unions methods.
type methodHandler map[string]string

func (h methodHandler) Call(m *Match[testReq]) string {
	return h[m.Request.method]
}

func (h methodHandler) Merge(other Handler[testReq, string]) Handler[testReq, string] {
	o, ok := other.(methodHandler)
	if !ok {
		return other
	}
	out := make(methodHandler, len(h)+len(o))
	for k, v := range h {
		out[k] = v
	}
	for k, v := range o {
		out[k] = v
	}
	return out
}

// countingHandler records how often Merge was called on it.
type countingHandler struct {
	text   string
	merges *int
}

func (h countingHandler) Call(_ *Match[testReq]) string {
	return h.text
}

func (h countingHandler) Merge(other Handler[testReq, string]) Handler[testReq, string] {
	*h.merges++
	return countingHandler{text: fmt.Sprintf("%s+%s", h.text, other.Call(nil)), merges: h.merges}
}

func nb() *Builder[testReq, string] {
	return NewBuilder[testReq, string]()
}

func match(root *Node[testReq, string], path string) (string, bool) {
	return root.Match(testReq{}, SplitPath(path))
}
