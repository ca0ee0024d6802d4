package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		template string
		path     string
		expected bool
	}{
		{name: "root", template: "/", path: "/", expected: true},
		{name: "empty template is root", template: "", path: "/", expected: true},
		{name: "literal", template: "/foo/bar", path: "/foo/bar", expected: true},
		{name: "literal without leading slash", template: "foo/bar", path: "/foo/bar", expected: true},
		{name: "string param", template: "/users/{name}", path: "/users/alice", expected: true},
		{name: "int param", template: "/users/{id:int}", path: "/users/42", expected: true},
		{name: "int param rejects text", template: "/users/{id:int}", path: "/users/abc", expected: false},
		{name: "uuid param", template: "/keys/{k:uuid}", path: "/keys/550e8400-e29b-41d4-a716-446655440000", expected: true},
		{name: "uuid param rejects text", template: "/keys/{k:uuid}", path: "/keys/nope", expected: false},
		{name: "slug macro", template: "/posts/{s:slug}", path: "/posts/hello-world", expected: true},
		{name: "slug macro rejects", template: "/posts/{s:slug}", path: "/posts/Hello_World", expected: false},
		{name: "regexp", template: "/api/{v:v[0-9]+}", path: "/api/v2", expected: true},
		{name: "regexp with braces", template: "/code/{c:[a-z]{2}}", path: "/code/ab", expected: true},
		{name: "regexp with braces rejects", template: "/code/{c:[a-z]{2}}", path: "/code/abc", expected: false},
		{name: "anonymous wildcard", template: "/static/*", path: "/static/css/app.css", expected: true},
		{name: "braced anonymous wildcard", template: "/static/{*}", path: "/static/a", expected: true},
		{name: "named star wildcard", template: "/static/*path", path: "/static/a/b", expected: true},
		{name: "dotted wildcard", template: "/static/{path...}", path: "/static/a/b", expected: true},
		{name: "wildcard needs a segment", template: "/static/*", path: "/static", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := Parse[testReq, string](tt.template, textHandler("ok"))
			require.NoError(t, err)

			_, ok := match(root, tt.path)
			assert.Equal(t, tt.expected, ok)
		})
	}
}

func TestParseParams(t *testing.T) {
	root := MustParse[testReq, string]("/projects/{projectId:int}/files/{name}/{rest...}", funcHandler(func(m *Match[testReq]) string {
		id, _ := m.Int("projectId")
		name, _ := m.String("name")
		if id != 7 || name != "readme" {
			return "wrong"
		}
		return m.Wildcard()[1]
	}))

	res, ok := match(root, "/projects/7/files/readme/a/b")
	require.True(t, ok)
	assert.Equal(t, "b", res)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		template string
	}{
		{name: "unbalanced open", template: "/users/{id"},
		{name: "unbalanced close", template: "/users/id}"},
		{name: "slash inside braces", template: "/users/{id:a/b}"},
		{name: "partial variable", template: "/users/{id}.json"},
		{name: "missing name", template: "/users/{:int}"},
		{name: "duplicated variable", template: "/a/{id}/b/{id}"},
		{name: "bad regexp", template: "/a/{id:[}"},
		{name: "segment after wildcard", template: "/static/*/more"},
		{name: "invalid literal", template: "/a b"},
		{name: "adjacent variables", template: "/{a}{b}"},
		{name: "adjacent variables with constraint", template: "/{a}{b:int}"},
		{name: "param and wildcard share a name", template: "/{a}/{a...}"},
		{name: "star wildcard reuses a param name", template: "/{path}/*path"},
		{name: "brace in wildcard name", template: "/files/*pa{th"},
		{name: "colon in wildcard name", template: "/files/{path:int...}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse[testReq, string](tt.template, textHandler("x"))
			require.Error(t, err)
			assert.True(t, IsConfigError(err, ""), err.Error())
		})
	}

	t.Run("must parse panics", func(t *testing.T) {
		assert.Panics(t, func() {
			MustParse[testReq, string]("/{", textHandler("x"))
		})
	})
}

func TestParseRoundTrip(t *testing.T) {
	templates := []string{
		"/",
		"/projects",
		"/projects/{projectId:int}",
		"/keys/{k:uuid}",
		"/posts/{s:slug}",
		"/users/{name}",
		"/static/*",
		"/files/{path...}",
	}

	for _, tpl := range templates {
		t.Run(tpl, func(t *testing.T) {
			root := MustParse[testReq, string](tpl, textHandler("x"))
			assert.Equal(t, []string{tpl}, root.Routes())
		})
	}
}
