package webrows_test

import (
	"testing"

	"github.com/fwojciec/webrows"
	"github.com/stretchr/testify/assert"
)

func TestResolveProperties(t *testing.T) {
	t.Parallel()

	canonical := []string{"domain", "link", "text"}

	t.Run("wildcard expands to canonical order", func(t *testing.T) {
		t.Parallel()

		props := webrows.ResolveProperties([]string{"*"}, canonical)
		assert.Equal(t, []string{"domain", "link", "text"}, props)
	})

	t.Run("wildcard returns a copy", func(t *testing.T) {
		t.Parallel()

		props := webrows.ResolveProperties([]string{"*"}, canonical)
		props[0] = "mutated"
		assert.Equal(t, "domain", canonical[0])
	})

	t.Run("names are trimmed and case-folded", func(t *testing.T) {
		t.Parallel()

		props := webrows.ResolveProperties([]string{" Link ", "TEXT"}, canonical)
		assert.Equal(t, []string{"link", "text"}, props)
	})

	t.Run("unknown names survive resolution", func(t *testing.T) {
		t.Parallel()

		props := webrows.ResolveProperties([]string{"link", "nope"}, canonical)
		assert.Equal(t, []string{"link", "nope"}, props)
	})

	t.Run("wildcard among other names is not a wildcard", func(t *testing.T) {
		t.Parallel()

		props := webrows.ResolveProperties([]string{"*", "link"}, canonical)
		assert.Equal(t, []string{"*", "link"}, props)
	})
}

func TestProject(t *testing.T) {
	t.Parallel()

	rec := webrows.Record{"domain": "example.org", "link": "https://example.org/c"}

	t.Run("aligns values with properties", func(t *testing.T) {
		t.Parallel()

		row := webrows.Project(rec, []string{"link", "domain"})
		assert.Equal(t, []any{"https://example.org/c", "example.org"}, row)
	})

	t.Run("unknown property yields empty string", func(t *testing.T) {
		t.Parallel()

		row := webrows.Project(rec, []string{"domain", "nope"})
		assert.Equal(t, []any{"example.org", ""}, row)
	})

	t.Run("nil value yields empty string", func(t *testing.T) {
		t.Parallel()

		row := webrows.Project(webrows.Record{"publish_date": nil}, []string{"publish_date"})
		assert.Equal(t, []any{""}, row)
	})

	t.Run("row length equals property count", func(t *testing.T) {
		t.Parallel()

		row := webrows.Project(webrows.Record{}, []string{"a", "b", "c"})
		assert.Len(t, row, 3)
	})
}

func TestHeader(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []any{"h1", "h2"}, webrows.Header([]string{"h1", "h2"}))
}
