package tabwalk

// GroupTransition is the boundary outcome for a grouped column on one row.
type GroupTransition int

const (
	GroupNone GroupTransition = iota
	GroupStart
	GroupEnd
	GroupStartAndEnd
)

// String returns a short name for the transition.
func (t GroupTransition) String() string {
	switch t {
	case GroupStart:
		return "start"
	case GroupEnd:
		return "end"
	case GroupStartAndEnd:
		return "start+end"
	default:
		return "none"
	}
}

// noResetGroup is larger than any real grouping level. The per-row counters
// are reset to it before the column walk.
const noResetGroup = int(^uint(0) >> 1)

// groupState carries the two per-row cascade counters. It is scoped to a
// single render pass and reset at the top of each row's column loop.
type groupState struct {
	lowestEnded   int
	lowestStarted int
}

func (s *groupState) reset() {
	s.lowestEnded = noResetGroup
	s.lowestStarted = noResetGroup
}

// transition computes the group boundary outcome for a column at the given
// grouping level, examining that column's value in the previous and next
// rows. prev and next are nil at the edges of the data; an empty string is a
// real value, not an absence. Columns must be examined in ordinal order: a
// shallower level that started or ended earlier in the same row cascades
// into every deeper level without moving the counters.
func (s *groupState) transition(value string, prev, next *string, level int) GroupTransition {
	var end, start bool

	if s.lowestEnded < level {
		end = true
	} else if next == nil || *next != value {
		end = true
		s.lowestEnded = level
	}

	if s.lowestStarted < level {
		start = true
	} else if prev == nil || *prev != value {
		start = true
		s.lowestStarted = level
	}

	switch {
	case start && end:
		return GroupStartAndEnd
	case start:
		return GroupStart
	case end:
		return GroupEnd
	default:
		return GroupNone
	}
}
