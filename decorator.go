package tabwalk

// RowDecorator observes row entries and group boundaries, and has final
// authority over a grouped cell's displayed text, including suppressing it.
// Decorators carry per-render mutable state and must be instantiated fresh
// per concurrent render.
type RowDecorator interface {
	// EnterRow is called once per row before its columns are examined.
	// number is 1-based within the iterated collection; absolute is number
	// plus the page offset.
	EnterRow(item any, number, absolute int)

	// StartOfGroup is called when a grouped column opens a run.
	StartOfGroup(value string, level int)

	// EndOfGroup is called when a grouped column closes a run.
	EndOfGroup(value string, level int)

	// DisplayGroupedValue returns the text to emit for a grouped cell.
	DisplayGroupedValue(value string, t GroupTransition, ordinal int) string
}

// Totaler accumulates running aggregates across group boundaries. It never
// emits output itself; a sink may query a concrete implementation when
// writing a footer. Like decorators, totalers are per-render state.
type Totaler interface {
	EnterRow(number, absolute int)
	StartGroup(value string, level int)
	StopGroup(value string, level int)
}

// noopTotaler substitutes for an absent totaler so the pipeline's hooks are
// always safely callable.
type noopTotaler struct{}

func (noopTotaler) EnterRow(int, int) {}
func (noopTotaler) StartGroup(string, int) {}
func (noopTotaler) StopGroup(string, int) {}

// GroupTally is a Totaler that counts rows per open group and records every
// closed group in order. Sinks can read the closed groups when writing
// footers or summaries.
type GroupTally struct {
	open   map[int]*openGroup
	closed []ClosedGroup
	rows   int
}

type openGroup struct {
	value string
	size  int
}

// ClosedGroup is one completed run of equal values on a grouped column.
type ClosedGroup struct {
	Level int
	Value string
	Size  int
}

// NewGroupTally creates an empty tally.
func NewGroupTally() *GroupTally {
	return &GroupTally{open: make(map[int]*openGroup)}
}

// EnterRow implements Totaler. Groups opened on the same row are counted by
// StartGroup instead, so only already-open groups grow here.
func (t *GroupTally) EnterRow(number, absolute int) {
	t.rows++
	for _, g := range t.open {
		g.size++
	}
}

// StartGroup implements Totaler.
func (t *GroupTally) StartGroup(value string, level int) {
	t.open[level] = &openGroup{value: value, size: 1}
}

// StopGroup implements Totaler.
func (t *GroupTally) StopGroup(value string, level int) {
	g, ok := t.open[level]
	if !ok {
		return
	}
	t.closed = append(t.closed, ClosedGroup{Level: level, Value: g.value, Size: g.size})
	delete(t.open, level)
}

// Rows returns the number of rows seen.
func (t *GroupTally) Rows() int { return t.rows }

// Closed returns the completed groups in the order they closed.
func (t *GroupTally) Closed() []ClosedGroup {
	out := make([]ClosedGroup, len(t.closed))
	copy(out, t.closed)
	return out
}
