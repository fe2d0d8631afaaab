package tabwalk

import "fmt"

// Media identifies the target output medium. It selects between the linked
// presentation value and the plain export value for each cell, and whether
// the body walks the current page or the full row list.
type Media int

const (
	MediaHTML Media = iota
	MediaText
	MediaCSV
	MediaMarkdown
	MediaExcel
)

// String returns the media name.
func (m Media) String() string {
	switch m {
	case MediaHTML:
		return "html"
	case MediaText:
		return "text"
	case MediaCSV:
		return "csv"
	case MediaMarkdown:
		return "markdown"
	case MediaExcel:
		return "excel"
	default:
		return "unknown"
	}
}

// Alignment controls column text alignment in sinks that lay out text.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// NoGroup marks a column that takes no part in group detection.
const NoGroup = -1

// Column is one configured table column. Ordinal and Group are fixed for the
// whole render. Lower Group numbers are shallower, outer groups; NoGroup
// disables grouping for the column. Note that a zero Group is a real
// grouping level: set Group to NoGroup for plain columns. Align and Width
// feed layout-oriented sinks only and never influence the pipeline.
type Column struct {
	Ordinal int
	Title   string
	Group   int
	Align   Alignment
	Width   int
}

// Row is one data item as produced by the row source. Number is 1-based
// within the iterated collection; the absolute row number is Number plus the
// page offset.
type Row struct {
	Item   any
	Number int
}

// Rower provides cell text by column ordinal. It is the interface the
// default cell valuer expects row items to implement.
type Rower interface {
	Row() []string
}

// TableModel describes one table to render: the ordered column definitions,
// the row collection with its page window, the optional observers, and the
// rendering configuration. Column ordinals and grouping levels must not
// change during a render. A model must not be shared across concurrent
// renders with mutable observers attached.
type TableModel struct {
	Columns    []Column
	Caption    string
	Footer     string
	Media      Media
	Decorator  RowDecorator
	Totaler    Totaler
	Valuer     CellValuer
	Properties Properties

	rows       []Row
	pageRows   []Row
	pageOffset int
}

// NewTableModel creates a model with the given columns and default
// properties.
func NewTableModel(cols []Column) *TableModel {
	return &TableModel{Columns: cols, Properties: DefaultProperties()}
}

// SetRows replaces the full row collection. Rows are numbered 1-based in the
// order given; the page window resets to the whole collection.
func (m *TableModel) SetRows(items ...any) {
	m.rows = make([]Row, len(items))
	for i, it := range items {
		m.rows[i] = Row{Item: it, Number: i + 1}
	}
	m.pageRows = m.rows
	m.pageOffset = 0
}

// SetPage restricts rendering to count rows starting at the 0-based offset
// into the full collection. Page rows are renumbered 1-based within the
// page, so a row's absolute number is its page number plus offset. Out of
// range windows are clamped.
func (m *TableModel) SetPage(offset, count int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(m.rows) {
		offset = len(m.rows)
	}
	end := offset + count
	if count < 0 || end > len(m.rows) {
		end = len(m.rows)
	}
	page := make([]Row, 0, end-offset)
	for i, r := range m.rows[offset:end] {
		page = append(page, Row{Item: r.Item, Number: i + 1})
	}
	m.pageRows = page
	m.pageOffset = offset
}

// rowIter returns an iterator over the full collection or the current page.
func (m *TableModel) rowIter(full bool) *rowIterator {
	if full {
		return &rowIterator{rows: m.rows}
	}
	return &rowIterator{rows: m.pageRows, pageOffset: m.pageOffset}
}

type rowIterator struct {
	rows       []Row
	pos        int
	pageOffset int
}

func (it *rowIterator) hasNext() bool { return it.pos < len(it.rows) }

func (it *rowIterator) next() Row {
	r := it.rows[it.pos]
	it.pos++
	return r
}

func (it *rowIterator) empty() bool { return len(it.rows) == 0 }

// stringify renders a row item for the no-columns path.
func stringify(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", v)
}
