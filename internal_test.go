package tabwalk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func TestGroupTransitionString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "none", GroupNone.String())
	assert.Equal(t, "start", GroupStart.String())
	assert.Equal(t, "end", GroupEnd.String())
	assert.Equal(t, "start+end", GroupStartAndEnd.String())
}

func TestGroupStateSingleLevel(t *testing.T) {
	t.Parallel()
	// Values A, A, B on a single level-0 column.
	tests := map[string]struct {
		value      string
		prev, next *string
		want       GroupTransition
	}{
		"first row of run":  {value: "A", prev: nil, next: strp("A"), want: GroupStart},
		"last row of run":   {value: "A", prev: strp("A"), next: strp("B"), want: GroupEnd},
		"run of length one": {value: "B", prev: strp("A"), next: nil, want: GroupStartAndEnd},
		"inside a run":      {value: "A", prev: strp("A"), next: strp("A"), want: GroupNone},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var s groupState
			s.reset()
			got := s.transition(tt.value, tt.prev, tt.next, 0)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGroupStateEmptyStringIsAValue(t *testing.T) {
	t.Parallel()
	var s groupState
	s.reset()
	// An empty previous value differs from "A"; an absent previous starts
	// the group for a different reason but both report Start.
	got := s.transition("A", strp(""), strp("A"), 0)
	assert.Equal(t, GroupStart, got)

	s.reset()
	got = s.transition("", strp(""), strp(""), 0)
	assert.Equal(t, GroupNone, got)
}

func TestGroupStateCascade(t *testing.T) {
	t.Parallel()
	// Outer level 0 over values A,A,B; inner level 1 stays x,x,x. When the
	// outer run closes, the inner one must close on the same row.
	var s groupState

	s.reset()
	assert.Equal(t, GroupStart, s.transition("A", nil, strp("A"), 0))
	assert.Equal(t, GroupStart, s.transition("x", nil, strp("x"), 1))

	s.reset()
	assert.Equal(t, GroupEnd, s.transition("A", strp("A"), strp("B"), 0))
	assert.Equal(t, GroupEnd, s.transition("x", strp("x"), strp("x"), 1))

	s.reset()
	assert.Equal(t, GroupStartAndEnd, s.transition("B", strp("A"), nil, 0))
	assert.Equal(t, GroupStartAndEnd, s.transition("x", strp("x"), nil, 1))
}

func TestGroupStateCascadeKeepsCounter(t *testing.T) {
	t.Parallel()
	// A cascaded end must not move the counter: a level between the
	// cascading one and the cascaded one still sees the shallower origin.
	var s groupState
	s.reset()
	assert.Equal(t, GroupEnd, s.transition("A", strp("A"), strp("B"), 0))
	assert.Equal(t, 0, s.lowestEnded)
	assert.Equal(t, GroupEnd, s.transition("x", strp("x"), strp("x"), 2))
	assert.Equal(t, 0, s.lowestEnded)
}

func TestGroupStateResetPerRow(t *testing.T) {
	t.Parallel()
	var s groupState
	s.reset()
	s.transition("A", strp("A"), strp("B"), 0) // ends, counter = 0
	s.reset()
	// After reset the deeper level no longer cascades.
	assert.Equal(t, GroupNone, s.transition("x", strp("x"), strp("x"), 1))
}

func TestLookaheadWindow(t *testing.T) {
	t.Parallel()
	m := NewTableModel([]Column{{Ordinal: 0, Title: "V"}})
	m.SetRows("a", "b", "c")
	it := m.rowIter(false)

	calls := map[int]int{}
	compute := func(r Row, c Column) (string, error) {
		calls[r.Number]++
		return r.Item.(string), nil
	}

	buf := newLookahead(1)

	require.NoError(t, buf.advance(it, m.Columns, compute))
	require.NotNil(t, buf.cur)
	assert.Equal(t, 1, buf.cur.Number)
	assert.Nil(t, buf.prev)
	require.NotNil(t, buf.next)
	assert.Equal(t, 2, buf.next.Number)
	assert.Nil(t, buf.prevRaw(0))
	assert.Equal(t, "b", *buf.nextRaw(0))

	require.NoError(t, buf.advance(it, m.Columns, compute))
	assert.Equal(t, 2, buf.cur.Number)
	assert.Equal(t, "a", *buf.prevRaw(0))
	assert.Equal(t, "c", *buf.nextRaw(0))

	require.NoError(t, buf.advance(it, m.Columns, compute))
	assert.Equal(t, 3, buf.cur.Number)
	assert.Equal(t, "b", *buf.prevRaw(0))
	assert.Nil(t, buf.next)
	assert.Nil(t, buf.nextRaw(0))

	// Each (row, column) value was computed exactly once.
	assert.Equal(t, map[int]int{1: 1, 2: 1, 3: 1}, calls)
}

func TestLookaheadComputeError(t *testing.T) {
	t.Parallel()
	m := NewTableModel([]Column{{Ordinal: 0}})
	m.SetRows("a", "b")
	it := m.rowIter(false)

	compute := func(r Row, c Column) (string, error) {
		if r.Number == 2 {
			return "", assert.AnError
		}
		return "v", nil
	}
	buf := newLookahead(1)
	err := buf.advance(it, m.Columns, compute)
	require.ErrorIs(t, err, assert.AnError)
}

func TestGroupTally(t *testing.T) {
	t.Parallel()
	// Mirrors the engine's call order for level-0 values A, A, B.
	tally := NewGroupTally()
	tally.EnterRow(1, 1)
	tally.StartGroup("A", 0)
	tally.EnterRow(2, 2)
	tally.StopGroup("A", 0)
	tally.EnterRow(3, 3)
	tally.StartGroup("B", 0)
	tally.StopGroup("B", 0)

	assert.Equal(t, 3, tally.Rows())
	assert.Equal(t, []ClosedGroup{
		{Level: 0, Value: "A", Size: 2},
		{Level: 0, Value: "B", Size: 1},
	}, tally.Closed())
}

func TestGroupTallyStopWithoutStart(t *testing.T) {
	t.Parallel()
	tally := NewGroupTally()
	tally.StopGroup("A", 0)
	assert.Empty(t, tally.Closed())
}

func TestEmptyRowMessageLocale(t *testing.T) {
	t.Parallel()
	p := DefaultProperties()
	assert.Equal(t, "Nothing found to display. Spanning 4 columns.", p.emptyRowMessage(4))

	p.Locale = "not a locale"
	assert.Equal(t, "Nothing found to display. Spanning 4 columns.", p.emptyRowMessage(4))
}

func TestStringify(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "7", stringify(7))
}
