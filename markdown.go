package tabwalk

import (
	"fmt"
	"io"
	"strings"
)

// MarkdownSink writes a GitHub-flavored Markdown table, one pipe row per
// data row with an alignment-marker separator under the header. Pipes in
// cell values are escaped.
type MarkdownSink struct {
	BaseSink
	w     io.Writer
	cells []string
}

// NewMarkdownSink creates a sink writing Markdown to w.
func NewMarkdownSink(w io.Writer) *MarkdownSink { return &MarkdownSink{w: w} }

func (s *MarkdownSink) EmptyListMessage(msg string) error {
	_, err := fmt.Fprintln(s.w, msg)
	return err
}

func (s *MarkdownSink) Caption(m *TableModel) error {
	if _, err := fmt.Fprintf(s.w, "**%s**\n", m.Caption); err != nil {
		return err
	}
	_, err := fmt.Fprintln(s.w)
	return err
}

func (s *MarkdownSink) TableHeader(m *TableModel) error {
	titles := make([]string, len(m.Columns))
	sep := make([]string, len(m.Columns))
	for i, col := range m.Columns {
		titles[i] = escapePipes(col.Title)
		switch col.Align {
		case AlignRight:
			sep[i] = "--:"
		case AlignCenter:
			sep[i] = ":-:"
		default:
			sep[i] = "---"
		}
	}
	if err := s.writeRow(titles); err != nil {
		return err
	}
	return s.writeRow(sep)
}

func (s *MarkdownSink) RowOpener(r Row) error {
	s.cells = s.cells[:0]
	return nil
}

func (s *MarkdownSink) ColumnValue(value string, c Column) error {
	s.cells = append(s.cells, escapePipes(value))
	return nil
}

func (s *MarkdownSink) RowWithNoColumns(value string) error {
	_, err := fmt.Fprintln(s.w, escapePipes(value))
	return err
}

func (s *MarkdownSink) RowCloser(r Row) error {
	if len(s.cells) == 0 {
		return nil
	}
	return s.writeRow(s.cells)
}

func (s *MarkdownSink) EmptyListRowMessage(msg string) error {
	_, err := fmt.Fprintln(s.w, msg)
	return err
}

func (s *MarkdownSink) writeRow(cells []string) error {
	_, err := fmt.Fprintf(s.w, "| %s |\n", strings.Join(cells, " | "))
	return err
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
