package tree

import "strings"

// SplitPath turns a request path into match segments. Everything from the
// first '?' is dropped, and empty segments produced by leading, trailing or
// repeated slashes are skipped. No decoding or dot-segment cleaning is done.
//
//	SplitPath("/test/wat//")      // ["test", "wat"]
//	SplitPath("/test/rawr?a/b")   // ["test", "rawr"]
//	SplitPath("/")                // []
func SplitPath(path string) []string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return nil
	}

	segments := make([]string, 0, strings.Count(path, "/")+1)
	start := 0
	for i := 0; i <= len(path); i++ {
		if i == len(path) || path[i] == '/' {
			if i > start {
				segments = append(segments, path[start:i])
			}
			start = i + 1
		}
	}

	return segments
}
