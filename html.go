package tabwalk

import (
	"fmt"
	"html"
	"io"
)

// HTMLSink writes the table as indented HTML markup. Captions, headers and
// messages are escaped; cell values are written as-is because the valuer's
// display mode may produce markup such as links.
type HTMLSink struct {
	BaseSink
	w io.Writer
}

// NewHTMLSink creates a sink writing HTML to w.
func NewHTMLSink(w io.Writer) *HTMLSink { return &HTMLSink{w: w} }

func (s *HTMLSink) EmptyListMessage(msg string) error {
	_, err := fmt.Fprintf(s.w, "<p>%s</p>\n", html.EscapeString(msg))
	return err
}

func (s *HTMLSink) TableOpener(m *TableModel) error {
	_, err := fmt.Fprintln(s.w, "<table>")
	return err
}

func (s *HTMLSink) Caption(m *TableModel) error {
	_, err := fmt.Fprintf(s.w, "  <caption>%s</caption>\n", html.EscapeString(m.Caption))
	return err
}

func (s *HTMLSink) TableHeader(m *TableModel) error {
	if _, err := fmt.Fprintln(s.w, "  <thead>"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(s.w, "    <tr>"); err != nil {
		return err
	}
	for _, col := range m.Columns {
		if _, err := fmt.Fprintf(s.w, "      <th%s>%s</th>\n", alignStyle(col.Align), html.EscapeString(col.Title)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(s.w, "    </tr>"); err != nil {
		return err
	}
	_, err := fmt.Fprintln(s.w, "  </thead>")
	return err
}

// PreBodyFooter places the footer in tfoot, which HTML allows before tbody.
// PostBodyFooter stays a no-op so the footer renders once.
func (s *HTMLSink) PreBodyFooter(m *TableModel) error {
	if _, err := fmt.Fprintln(s.w, "  <tfoot>"); err != nil {
		return err
	}
	cols := len(m.Columns)
	if cols == 0 {
		cols = 1
	}
	if _, err := fmt.Fprintf(s.w, "    <tr><td colspan=%q>%s</td></tr>\n", fmt.Sprint(cols), html.EscapeString(m.Footer)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(s.w, "  </tfoot>")
	return err
}

func (s *HTMLSink) TableBodyOpener(m *TableModel) error {
	_, err := fmt.Fprintln(s.w, "  <tbody>")
	return err
}

func (s *HTMLSink) RowOpener(r Row) error {
	_, err := fmt.Fprintln(s.w, "    <tr>")
	return err
}

func (s *HTMLSink) ColumnOpener(c Column) error {
	_, err := fmt.Fprintf(s.w, "      <td%s>", alignStyle(c.Align))
	return err
}

func (s *HTMLSink) ColumnValue(value string, c Column) error {
	_, err := io.WriteString(s.w, value)
	return err
}

func (s *HTMLSink) ColumnCloser(c Column) error {
	_, err := fmt.Fprintln(s.w, "</td>")
	return err
}

func (s *HTMLSink) RowWithNoColumns(value string) error {
	_, err := fmt.Fprintf(s.w, "      <td>%s</td>\n", html.EscapeString(value))
	return err
}

func (s *HTMLSink) RowCloser(r Row) error {
	_, err := fmt.Fprintln(s.w, "    </tr>")
	return err
}

func (s *HTMLSink) EmptyListRowMessage(msg string) error {
	_, err := fmt.Fprintf(s.w, "    <tr><td>%s</td></tr>\n", html.EscapeString(msg))
	return err
}

func (s *HTMLSink) TableBodyCloser(m *TableModel) error {
	_, err := fmt.Fprintln(s.w, "  </tbody>")
	return err
}

func (s *HTMLSink) TableCloser(m *TableModel) error {
	_, err := fmt.Fprintln(s.w, "</table>")
	return err
}

func alignStyle(a Alignment) string {
	switch a {
	case AlignRight:
		return ` style="text-align: right"`
	case AlignCenter:
		return ` style="text-align: center"`
	default:
		return ""
	}
}
