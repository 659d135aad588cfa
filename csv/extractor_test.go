package csv_test

import (
	"testing"

	"github.com/fwojciec/webrows"
	"github.com/fwojciec/webrows/csv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("each data row becomes one record", func(t *testing.T) {
		t.Parallel()

		ex := csv.NewExtractor()
		records, err := ex.Extract("h1,h2\nv1,v2\nv3,v4\n", "https://x/a.csv")
		require.NoError(t, err)

		require.Len(t, records, 2)
		assert.Equal(t, webrows.Record{"h1": "v1", "h2": "v2"}, records[0])
		assert.Equal(t, webrows.Record{"h1": "v3", "h2": "v4"}, records[1])
	})

	t.Run("strips a UTF-8 byte-order mark", func(t *testing.T) {
		t.Parallel()

		ex := csv.NewExtractor()
		records, err := ex.Extract("\uFEFFh1,h2\nv1,v2\n", "https://x/a.csv")
		require.NoError(t, err)

		require.Len(t, records, 1)
		assert.Equal(t, webrows.Record{"h1": "v1", "h2": "v2"}, records[0])
		assert.Equal(t, []string{"h1", "h2"}, ex.Fields())
	})

	t.Run("header names are trimmed and lower-cased", func(t *testing.T) {
		t.Parallel()

		ex := csv.NewExtractor()
		records, err := ex.Extract(" Name , AGE\nann,41\n", "https://x/a.csv")
		require.NoError(t, err)

		require.Len(t, records, 1)
		assert.Equal(t, webrows.Record{"name": "ann", "age": "41"}, records[0])
	})

	t.Run("schema locks to the first parsed URL", func(t *testing.T) {
		t.Parallel()

		ex := csv.NewExtractor()
		_, err := ex.Extract("a,b\n1,2\n", "https://x/1.csv")
		require.NoError(t, err)

		records, err := ex.Extract("a,c\n3,4\n", "https://x/2.csv")
		require.NoError(t, err)

		assert.Equal(t, []string{"a", "b"}, ex.Fields())

		// Projection onto the locked schema drops c and leaves b empty.
		row := webrows.Project(records[0], ex.Fields())
		assert.Equal(t, []any{"3", ""}, row)
	})

	t.Run("empty body yields zero records and no schema", func(t *testing.T) {
		t.Parallel()

		ex := csv.NewExtractor()
		records, err := ex.Extract("", "https://x/a.csv")
		require.NoError(t, err)
		assert.Empty(t, records)
		assert.Nil(t, ex.Fields())
	})

	t.Run("short rows leave trailing fields absent", func(t *testing.T) {
		t.Parallel()

		ex := csv.NewExtractor()
		records, err := ex.Extract("a,b\n1\n", "https://x/a.csv")
		require.NoError(t, err)

		require.Len(t, records, 1)
		row := webrows.Project(records[0], []string{"a", "b"})
		assert.Equal(t, []any{"1", ""}, row)
	})

	t.Run("quoted fields keep embedded delimiters", func(t *testing.T) {
		t.Parallel()

		ex := csv.NewExtractor()
		records, err := ex.Extract("a,b\n\"1,5\",2\n", "https://x/a.csv")
		require.NoError(t, err)

		require.Len(t, records, 1)
		assert.Equal(t, webrows.Record{"a": "1,5", "b": "2"}, records[0])
	})
}
