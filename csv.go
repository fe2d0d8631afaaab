package tabwalk

import (
	"encoding/csv"
	"io"
)

// CSVSink writes one CSV record per row, with a header record when headers
// are enabled. The field delimiter defaults to a comma.
type CSVSink struct {
	BaseSink
	cw    *csv.Writer
	cells []string
}

// NewCSVSink creates a sink writing CSV to w.
func NewCSVSink(w io.Writer) *CSVSink { return &CSVSink{cw: csv.NewWriter(w)} }

// SetDelimiter overrides the field delimiter.
func (s *CSVSink) SetDelimiter(r rune) { s.cw.Comma = r }

func (s *CSVSink) EmptyListMessage(msg string) error {
	return s.writeRecord([]string{msg})
}

func (s *CSVSink) TableHeader(m *TableModel) error {
	titles := make([]string, len(m.Columns))
	for i, col := range m.Columns {
		titles[i] = col.Title
	}
	return s.writeRecord(titles)
}

func (s *CSVSink) RowOpener(r Row) error {
	s.cells = s.cells[:0]
	return nil
}

func (s *CSVSink) ColumnValue(value string, c Column) error {
	s.cells = append(s.cells, value)
	return nil
}

func (s *CSVSink) RowWithNoColumns(value string) error {
	return s.writeRecord([]string{value})
}

func (s *CSVSink) RowCloser(r Row) error {
	if len(s.cells) == 0 {
		return nil
	}
	return s.writeRecord(s.cells)
}

func (s *CSVSink) EmptyListRowMessage(msg string) error {
	return s.writeRecord([]string{msg})
}

func (s *CSVSink) TableCloser(m *TableModel) error {
	s.cw.Flush()
	return s.cw.Error()
}

func (s *CSVSink) writeRecord(cells []string) error {
	if err := s.cw.Write(cells); err != nil {
		return err
	}
	s.cw.Flush()
	return s.cw.Error()
}
