package resultset

import (
	"fmt"
	"html"
	"io"
)

// Dump writes the remaining rows as an HTML table. Debugging aid only.
func (rs *ResultSet) Dump(w io.Writer) error {
	row, err := rs.Fetch()
	if err != nil {
		return err
	}
	if row == nil {
		_, err := fmt.Fprintln(w, "<p><em>empty result set</em></p>")
		return err
	}

	fmt.Fprintln(w, "<table>\n<thead>\n<tr>")
	fmt.Fprintln(w, "\t<th>#row</th>")
	for _, col := range row.Columns() {
		fmt.Fprintf(w, "\t<th>%s</th>\n", html.EscapeString(col))
	}
	fmt.Fprintln(w, "</tr>\n</thead>\n<tbody>")

	for n := 0; row != nil; n++ {
		fmt.Fprintf(w, "<tr>\n\t<th>%d</th>\n", n)
		for _, col := range row.Columns() {
			fmt.Fprintf(w, "\t<td>%s</td>\n",
				html.EscapeString(fmt.Sprintf("%v", row.Get(col))))
		}
		fmt.Fprintln(w, "</tr>")

		if row, err = rs.Fetch(); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(w, "</tbody>\n</table>")
	return err
}
