package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitalvas/pathtree/segment"
)

func TestBuilder(t *testing.T) {
	t.Run("leading slash and colon are ignored", func(t *testing.T) {
		root := nb().
			Path("/foo", nb().Handler(textHandler("foo"))).
			StringParam("/:id", nb().Handler(textHandler("id"))).
			MustBuild()

		_, ok := root.Literal("foo")
		assert.True(t, ok)
		p, _, ok := root.Param()
		require.True(t, ok)
		assert.Equal(t, "id", p.Name())
	})

	t.Run("named wildcard", func(t *testing.T) {
		root := nb().NamedWildcard("path", nb().Handler(textHandler("w"))).MustBuild()

		w, _, ok := root.Wildcard()
		require.True(t, ok)
		assert.Equal(t, "path", w.Name())
		assert.False(t, w.IsAnonymous())
	})

	t.Run("error in nested builder propagates", func(t *testing.T) {
		_, err := nb().
			Path("ok", nb().
				Path("bad segment", nb().Handler(textHandler("x")))).
			Build()

		assert.True(t, IsConfigError(err, CodeInvalidLiteral))
	})

	t.Run("first error wins", func(t *testing.T) {
		bld := nb().
			Param(segment.Number("a"), nb().Handler(textHandler("a"))).
			Param(segment.Number("b"), nb().Handler(textHandler("b"))).
			Path("bad/literal", nb().Handler(textHandler("c")))

		assert.True(t, IsConfigError(bld.Err(), CodeDuplicateParam))
		_, err := bld.Build()
		assert.True(t, IsConfigError(err, CodeDuplicateParam))
	})

	t.Run("duplicate literal", func(t *testing.T) {
		_, err := nb().
			Path("foo", nb().Handler(textHandler("1"))).
			Path("/foo", nb().Handler(textHandler("2"))).
			Build()

		assert.True(t, IsConfigError(err, CodeDuplicateLiteral))
	})

	t.Run("duplicate wildcard", func(t *testing.T) {
		_, err := nb().
			Wildcard(nb().Handler(textHandler("1"))).
			NamedWildcard("rest", nb().Handler(textHandler("2"))).
			Build()

		assert.True(t, IsConfigError(err, CodeDuplicateWildcard))
	})

	t.Run("nil child", func(t *testing.T) {
		_, err := nb().Path("foo", nil).Build()
		assert.True(t, IsConfigError(err, CodeNilChild))
	})

	t.Run("must build panics on error", func(t *testing.T) {
		assert.Panics(t, func() {
			nb().Path("", nb()).MustBuild()
		})
	})

	t.Run("calls after an error are ignored", func(t *testing.T) {
		bld := nb().Path("", nb()).Handler(textHandler("late"))
		require.Error(t, bld.Err())
		assert.Nil(t, bld.node.handler)
	})
}

func TestIsConfigError(t *testing.T) {
	err := errInvalidLiteral("a b")

	assert.True(t, IsConfigError(err, ""))
	assert.True(t, IsConfigError(err, CodeInvalidLiteral))
	assert.False(t, IsConfigError(err, CodeDuplicateLiteral))
	assert.False(t, IsConfigError(assert.AnError, ""))
	assert.False(t, IsConfigError(nil, ""))
	assert.Contains(t, err.Error(), "pathtree: literal segment")
}
