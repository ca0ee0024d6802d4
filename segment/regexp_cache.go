package segment

import (
	"regexp"
	"sync"
)

// patterns maps a pattern param source to its compiled, anchored form.
// Tables are rebuilt from the same templates on every update, so it only
// grows with the number of distinct patterns.
var patterns sync.Map

// anchoredRegexp compiles src so that it must match a whole segment.
func anchoredRegexp(src string) (*regexp.Regexp, error) {
	if re, ok := patterns.Load(src); ok {
		return re.(*regexp.Regexp), nil
	}

	re, err := regexp.Compile("^(?:" + src + ")$")
	if err != nil {
		return nil, err
	}

	stored, _ := patterns.LoadOrStore(src, re)
	return stored.(*regexp.Regexp), nil
}
