package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitalvas/pathtree/segment"
)

func TestMergeEmpty(t *testing.T) {
	t.Run("two empty trees", func(t *testing.T) {
		root := Merge(Empty[testReq, string](), Empty[testReq, string]())
		assert.True(t, root.IsEmpty())
	})

	t.Run("two nil trees", func(t *testing.T) {
		root := Merge[testReq, string](nil, nil)
		require.NotNil(t, root)
		assert.True(t, root.IsEmpty())
	})

	t.Run("empty side is identity", func(t *testing.T) {
		a := MustParse[testReq, string]("/foo", textHandler("foo"))

		assert.Equal(t, []string{"/foo"}, Merge(a, Empty[testReq, string]()).Routes())
		assert.Equal(t, []string{"/foo"}, Merge(Empty[testReq, string](), a).Routes())
		assert.Equal(t, []string{"/foo"}, Merge(a, nil).Routes())
	})
}

func TestMergeDisjoint(t *testing.T) {
	a := nb().Path("/foo", nb().Handler(textHandler("foo"))).MustBuild()
	b := nb().Path("/bar", nb().Handler(textHandler("bar"))).MustBuild()

	root := Merge(a, b)

	res, _ := match(root, "/foo")
	assert.Equal(t, "foo", res)
	res, _ = match(root, "/bar")
	assert.Equal(t, "bar", res)
}

func TestMergeLeavesInputsUnchanged(t *testing.T) {
	r1 := nb().
		Path("/foo", nb().Handler(textHandler("foo"))).
		Path("/bar", nb().Handler(textHandler("bar"))).
		MustBuild()
	fragment := nb().Path("/baz", nb().Handler(textHandler("baz"))).MustBuild()

	r2 := Merge(r1, fragment)

	_, ok := match(r1, "/baz")
	assert.False(t, ok)
	_, ok = match(fragment, "/foo")
	assert.False(t, ok)

	for path, expected := range map[string]string{"/foo": "foo", "/bar": "bar", "/baz": "baz"} {
		res, ok := match(r2, path)
		require.True(t, ok, path)
		assert.Equal(t, expected, res)
	}
}

func TestMergeSingleRoutes(t *testing.T) {
	r1 := MustParse[testReq, string]("/", textHandler("root"))
	r2 := MustParse[testReq, string]("/projects", textHandler("projects"))
	r3 := MustParse[testReq, string]("/projects/{projectId:int}", funcHandler(func(m *Match[testReq]) string {
		id, _ := m.Int("projectId")
		if id == 666 {
			return "devil"
		}
		return "project"
	}))
	r4 := MustParse[testReq, string]("/projects/{projectId:int}/todos", textHandler("todos"))
	r5 := MustParse[testReq, string]("/projects/{projectId:int}/todos/*", funcHandler(func(m *Match[testReq]) string {
		return "rest " + m.Wildcard()[0]
	}))

	root := Merge(Merge(Merge(Merge(r1, r2), r3), r4), r5)

	tests := []struct {
		path     string
		expected string
	}{
		{path: "/", expected: "root"},
		{path: "/projects", expected: "projects"},
		{path: "/projects/1", expected: "project"},
		{path: "/projects/666", expected: "devil"},
		{path: "/projects/1/todos", expected: "todos"},
		{path: "/projects/1/todos/x/y", expected: "rest x"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			res, ok := match(root, tt.path)
			require.True(t, ok)
			assert.Equal(t, tt.expected, res)
		})
	}
}

func TestMergeHandlers(t *testing.T) {
	t.Run("merge is called once for a shared position", func(t *testing.T) {
		merges := 0
		a := nb().Path("x", nb().Handler(countingHandler{text: "a", merges: &merges})).MustBuild()
		b := nb().Path("x", nb().Handler(countingHandler{text: "b", merges: &merges})).MustBuild()

		root := Merge(a, b)

		assert.Equal(t, 1, merges)
		res, _ := match(root, "/x")
		assert.Equal(t, "a+b", res)
	})

	t.Run("merge is not called when one side has no handler", func(t *testing.T) {
		merges := 0
		a := nb().Path("x", nb().Handler(countingHandler{text: "a", merges: &merges})).MustBuild()
		b := nb().Path("x", nb().Path("y", nb().Handler(textHandler("y")))).MustBuild()

		root := Merge(a, b)

		assert.Equal(t, 0, merges)
		res, _ := match(root, "/x")
		assert.Equal(t, "a", res)
		res, _ = match(root, "/x/y")
		assert.Equal(t, "y", res)
	})

	t.Run("method handlers are unioned", func(t *testing.T) {
		get := nb().Path("/foo", nb().Handler(methodHandler{"GET": "hello GET"})).MustBuild()
		post := nb().Path("/foo", nb().Handler(methodHandler{"POST": "hello POST"})).MustBuild()

		root := Merge(get, post)

		res, _ := root.Match(testReq{method: "GET"}, SplitPath("/foo"))
		assert.Equal(t, "hello GET", res)
		res, _ = root.Match(testReq{method: "POST"}, SplitPath("/foo"))
		assert.Equal(t, "hello POST", res)
		res, ok := root.Match(testReq{method: "DELETE"}, SplitPath("/foo"))
		assert.True(t, ok)
		assert.Empty(t, res)
	})

	t.Run("root handlers are merged", func(t *testing.T) {
		merges := 0
		a := nb().Handler(countingHandler{text: "a", merges: &merges}).MustBuild()
		b := nb().Handler(textHandler("b")).MustBuild()

		res, _ := match(Merge(a, b), "/")
		assert.Equal(t, "a+b", res)
		assert.Equal(t, 1, merges)
	})
}

func TestMergeParamsAndWildcards(t *testing.T) {
	t.Run("param subtrees are merged", func(t *testing.T) {
		a := MustParse[testReq, string]("/p/{id:int}", textHandler("show"))
		b := MustParse[testReq, string]("/p/{id:int}/edit", textHandler("edit"))

		root := Merge(a, b)

		res, _ := match(root, "/p/1")
		assert.Equal(t, "show", res)
		res, _ = match(root, "/p/1/edit")
		assert.Equal(t, "edit", res)
	})

	t.Run("one-sided param is kept", func(t *testing.T) {
		a := MustParse[testReq, string]("/p/{id:int}", textHandler("show"))
		b := MustParse[testReq, string]("/p", textHandler("list"))

		for _, root := range []*Node[testReq, string]{Merge(a, b), Merge(b, a)} {
			res, _ := match(root, "/p/1")
			assert.Equal(t, "show", res)
			res, _ = match(root, "/p")
			assert.Equal(t, "list", res)
		}
	})

	t.Run("one-sided wildcard is kept", func(t *testing.T) {
		a := MustParse[testReq, string]("/files/*", textHandler("files"))
		b := MustParse[testReq, string]("/files/index", textHandler("index"))

		for _, root := range []*Node[testReq, string]{Merge(a, b), Merge(b, a)} {
			res, _ := match(root, "/files/a/b")
			assert.Equal(t, "files", res)
			res, _ = match(root, "/files/index")
			assert.Equal(t, "index", res)
		}
	})

	t.Run("later descriptor wins", func(t *testing.T) {
		a := MustParse[testReq, string]("/p/{id:int}", textHandler("int"))
		b := MustParse[testReq, string]("/p/{slug}/x", textHandler("slug"))

		root := Merge(a, b)

		p, _ := root.Literal("p")
		param, _, ok := p.Param()
		require.True(t, ok)
		assert.Equal(t, "slug", param.Name())

		res, ok := match(root, "/p/abc")
		assert.True(t, ok, "string descriptor accepts non-numeric segments")
		assert.Equal(t, "int", res)
	})
}

func TestMergeStrict(t *testing.T) {
	t.Run("same descriptors merge", func(t *testing.T) {
		a := MustParse[testReq, string]("/p/{id:int}", textHandler("show"))
		b := MustParse[testReq, string]("/p/{id:int}/edit", textHandler("edit"))

		root, err := MergeStrict(a, b)
		require.NoError(t, err)
		assert.Equal(t, []string{"/p/{id:int}", "/p/{id:int}/edit"}, root.Routes())
	})

	t.Run("param name conflict", func(t *testing.T) {
		a := MustParse[testReq, string]("/p/{id:int}", textHandler("a"))
		b := MustParse[testReq, string]("/p/{pid:int}", textHandler("b"))

		_, err := MergeStrict(a, b)
		assert.True(t, IsConfigError(err, CodeParamConflict))
		assert.Contains(t, err.Error(), "/p")
	})

	t.Run("param constraint conflict", func(t *testing.T) {
		a := MustParse[testReq, string]("/p/{id:int}", textHandler("a"))
		b := MustParse[testReq, string]("/p/{id}", textHandler("b"))

		_, err := MergeStrict(a, b)
		assert.True(t, IsConfigError(err, CodeParamConflict))
	})

	t.Run("param type conflict", func(t *testing.T) {
		custom := segment.Custom("id", func(raw string) (segment.Value, bool) {
			return segment.StringValue(raw), true
		})
		a := nb().Param(custom, nb().Handler(textHandler("a"))).MustBuild()
		b := nb().Param(segment.String("id"), nb().Handler(textHandler("b"))).MustBuild()

		_, err := MergeStrict(a, b)
		assert.True(t, IsConfigError(err, CodeParamConflict))
	})

	t.Run("wildcard name conflict", func(t *testing.T) {
		a := MustParse[testReq, string]("/files/*", textHandler("a"))
		b := MustParse[testReq, string]("/files/{rest...}", textHandler("b"))

		_, err := MergeStrict(a, b)
		assert.True(t, IsConfigError(err, CodeWildcardConflict))
	})

	t.Run("nested conflict", func(t *testing.T) {
		a := MustParse[testReq, string]("/a/b/{x}", textHandler("a"))
		b := MustParse[testReq, string]("/a/b/{y}", textHandler("b"))

		_, err := MergeStrict(a, b)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "/a/b")
	})
}

func TestNodeLen(t *testing.T) {
	t.Run("builder counts handlers in the subtree", func(t *testing.T) {
		root := walkFixture()
		assert.Equal(t, 7, root.Len())
		assert.Len(t, root.Routes(), root.Len())
	})

	t.Run("empty and nil trees", func(t *testing.T) {
		assert.Zero(t, Empty[testReq, string]().Len())

		var n *Node[testReq, string]
		assert.Zero(t, n.Len())
	})

	t.Run("merge keeps the count", func(t *testing.T) {
		templates := []string{
			"/",
			"/projects",
			"/projects/{id:int}",
			"/projects/{id:int}/todos",
			"/projects",
			"/static/*",
			"/static/index",
		}

		root := Empty[testReq, string]()
		for _, tpl := range templates {
			root = Merge(root, MustParse[testReq, string](tpl, textHandler(tpl)))
			assert.Len(t, root.Routes(), root.Len(), tpl)
		}
		assert.Equal(t, 6, root.Len())
	})

	t.Run("inputs keep their count", func(t *testing.T) {
		a := MustParse[testReq, string]("/a", textHandler("a"))
		b := MustParse[testReq, string]("/b", textHandler("b"))

		assert.Equal(t, 2, Merge(a, b).Len())
		assert.Equal(t, 1, a.Len())
		assert.Equal(t, 1, b.Len())
	})
}
