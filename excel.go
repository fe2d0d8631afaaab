package tabwalk

import (
	"io"

	"github.com/xuri/excelize/v2"
)

// ExcelSink writes rows into the first sheet of an xlsx workbook and saves
// it to the underlying writer when the table closes. Header cells are bold.
type ExcelSink struct {
	BaseSink
	w     io.Writer
	f     *excelize.File
	sheet string
	row   int
	col   int
}

// NewExcelSink creates a sink writing a workbook to w.
func NewExcelSink(w io.Writer) *ExcelSink {
	return &ExcelSink{w: w, sheet: "Sheet1"}
}

func (s *ExcelSink) file() *excelize.File {
	if s.f == nil {
		s.f = excelize.NewFile()
	}
	return s.f
}

// EmptyListMessage also saves the workbook: it is the only callback that
// fires when the table hides on empty, so there is no later close point.
func (s *ExcelSink) EmptyListMessage(msg string) error {
	f := s.file()
	addr, err := excelize.CoordinatesToCellName(1, 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStr(s.sheet, addr, msg); err != nil {
		return err
	}
	return s.save()
}

func (s *ExcelSink) TableOpener(m *TableModel) error {
	s.f = excelize.NewFile()
	s.row = 0
	return nil
}

func (s *ExcelSink) Caption(m *TableModel) error {
	return s.writeSingle(m.Caption)
}

func (s *ExcelSink) TableHeader(m *TableModel) error {
	f := s.file()
	s.row++
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	for i, col := range m.Columns {
		addr, err := excelize.CoordinatesToCellName(i+1, s.row)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(s.sheet, addr, col.Title); err != nil {
			return err
		}
		if err := f.SetCellStyle(s.sheet, addr, addr, style); err != nil {
			return err
		}
	}
	return nil
}

func (s *ExcelSink) RowOpener(r Row) error {
	s.row++
	s.col = 0
	return nil
}

func (s *ExcelSink) ColumnValue(value string, c Column) error {
	s.col++
	addr, err := excelize.CoordinatesToCellName(s.col, s.row)
	if err != nil {
		return err
	}
	return s.file().SetCellStr(s.sheet, addr, value)
}

func (s *ExcelSink) RowWithNoColumns(value string) error {
	addr, err := excelize.CoordinatesToCellName(1, s.row)
	if err != nil {
		return err
	}
	return s.file().SetCellStr(s.sheet, addr, value)
}

func (s *ExcelSink) EmptyListRowMessage(msg string) error {
	return s.writeSingle(msg)
}

func (s *ExcelSink) PostBodyFooter(m *TableModel) error {
	return s.writeSingle(m.Footer)
}

func (s *ExcelSink) TableCloser(m *TableModel) error {
	return s.save()
}

func (s *ExcelSink) writeSingle(value string) error {
	s.row++
	addr, err := excelize.CoordinatesToCellName(1, s.row)
	if err != nil {
		return err
	}
	return s.file().SetCellStr(s.sheet, addr, value)
}

func (s *ExcelSink) save() error {
	f := s.file()
	if err := f.Write(s.w); err != nil {
		return err
	}
	return f.Close()
}
