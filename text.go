package tabwalk

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// TextSink renders a plain fixed-width text table. Column widths are
// resolved once at TableOpener from each column's Title and Width hint;
// cells wider than their column are truncated with "...". Widths use
// display cells, not bytes, so full-width characters line up.
type TextSink struct {
	BaseSink
	w      io.Writer
	cols   []Column
	widths []int
	cells  []string
}

// NewTextSink creates a sink writing text to w.
func NewTextSink(w io.Writer) *TextSink { return &TextSink{w: w} }

func (s *TextSink) EmptyListMessage(msg string) error {
	_, err := fmt.Fprintln(s.w, msg)
	return err
}

func (s *TextSink) TableOpener(m *TableModel) error {
	s.cols = m.Columns
	s.widths = make([]int, len(m.Columns))
	for i, col := range m.Columns {
		w := runewidth.StringWidth(col.Title)
		if col.Width > w {
			w = col.Width
		}
		if w < 4 {
			w = 4
		}
		s.widths[i] = w
	}
	return nil
}

func (s *TextSink) Caption(m *TableModel) error {
	_, err := fmt.Fprintln(s.w, m.Caption)
	return err
}

func (s *TextSink) TableHeader(m *TableModel) error {
	titles := make([]string, len(m.Columns))
	for i, col := range m.Columns {
		titles[i] = col.Title
	}
	if err := s.writeLine(titles); err != nil {
		return err
	}
	return s.writeSep()
}

func (s *TextSink) RowOpener(r Row) error {
	s.cells = s.cells[:0]
	return nil
}

func (s *TextSink) ColumnValue(value string, c Column) error {
	s.cells = append(s.cells, value)
	return nil
}

func (s *TextSink) RowWithNoColumns(value string) error {
	_, err := fmt.Fprintln(s.w, value)
	return err
}

func (s *TextSink) RowCloser(r Row) error {
	if len(s.widths) == 0 {
		return nil
	}
	return s.writeLine(s.cells)
}

func (s *TextSink) EmptyListRowMessage(msg string) error {
	_, err := fmt.Fprintln(s.w, msg)
	return err
}

func (s *TextSink) PostBodyFooter(m *TableModel) error {
	if err := s.writeSep(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(s.w, m.Footer)
	return err
}

func (s *TextSink) writeSep() error {
	sep := make([]string, len(s.widths))
	for i, w := range s.widths {
		sep[i] = strings.Repeat("-", w)
	}
	_, err := fmt.Fprintln(s.w, strings.Join(sep, "  "))
	return err
}

func (s *TextSink) writeLine(cells []string) error {
	parts := make([]string, len(s.widths))
	for i, w := range s.widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		align := AlignLeft
		if i < len(s.cols) {
			align = s.cols[i].Align
		}
		parts[i] = formatTextCell(cell, w, align)
	}
	line := strings.TrimRight(strings.Join(parts, "  "), " ")
	_, err := fmt.Fprintln(s.w, line)
	return err
}

func formatTextCell(s string, width int, align Alignment) string {
	if width > 0 && runewidth.StringWidth(s) > width {
		if width <= 3 {
			s = runewidth.Truncate(s, width, "")
		} else {
			s = runewidth.Truncate(s, width, "...")
		}
	}
	return alignTextCell(s, width, align)
}

func alignTextCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
