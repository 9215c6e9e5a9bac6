package resultset_test

import (
	"strings"
	"testing"

	"github.com/tobsdb/rowset/internal/driver"
	. "github.com/tobsdb/rowset/internal/resultset"
	"gotest.tools/assert"
)

func TestDump(t *testing.T) {
	t.Run("renders a table", func(t *testing.T) {
		rs := New(newIdNameResult())
		var buf strings.Builder
		assert.NilError(t, rs.Dump(&buf))

		out := buf.String()
		assert.Assert(t, strings.Contains(out, "<table>"))
		assert.Assert(t, strings.Contains(out, "<th>name</th>"))
		assert.Assert(t, strings.Contains(out, "<td>a</td>"))
		assert.Assert(t, strings.Contains(out, "<td>b</td>"))
	})

	t.Run("escapes values", func(t *testing.T) {
		row := driver.NewRow()
		row.Set("name", "<script>alert(1)</script>")
		rs := New(driver.NewMemoryResult(
			[]driver.ColumnMeta{{Name: "name"}}, []*driver.Row{row}))

		var buf strings.Builder
		assert.NilError(t, rs.Dump(&buf))
		assert.Assert(t, !strings.Contains(buf.String(), "<script>"))
		assert.Assert(t, strings.Contains(buf.String(), "&lt;script&gt;"))
	})

	t.Run("empty result", func(t *testing.T) {
		rs := New(newEmptyResult())
		var buf strings.Builder
		assert.NilError(t, rs.Dump(&buf))
		assert.Assert(t, strings.Contains(buf.String(), "empty result set"))
	})
}
