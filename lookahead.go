package tabwalk

// cellValue is the computed text for one (row, column) pair. raw is the
// valuer's output, computed once the first time the row is seen; decorated
// is what the sink receives for the current row.
type cellValue struct {
	col       Column
	raw       string
	decorated string
}

// lookahead holds the previous, current and next rows of one render pass,
// each paired with its ordinal-keyed cell values. The buffer owns the three
// value maps for the duration of the pass; shifting the window moves the
// maps along with the rows so a value is never recomputed when its row later
// becomes current or previous.
type lookahead struct {
	prev, cur, next             *Row
	prevVals, curVals, nextVals map[int]*cellValue
}

func newLookahead(cols int) *lookahead {
	return &lookahead{
		curVals:  make(map[int]*cellValue, cols),
		nextVals: make(map[int]*cellValue, cols),
	}
}

// advance shifts the window one row forward and refills the next slot from
// the iterator, computing the pulled row's cell values immediately so that
// group decisions for the new current row can see them. On the very first
// call the current slot is populated directly from the iterator.
func (b *lookahead) advance(it *rowIterator, cols []Column, compute func(Row, Column) (string, error)) error {
	if b.cur == nil {
		r := it.next()
		b.cur = &r
		if err := fillValues(b.curVals, r, cols, compute); err != nil {
			return err
		}
	} else {
		b.prev, b.prevVals = b.cur, b.curVals
		b.cur, b.curVals = b.next, b.nextVals
	}

	b.next = nil
	b.nextVals = make(map[int]*cellValue, len(cols))
	if it.hasNext() {
		r := it.next()
		b.next = &r
		if err := fillValues(b.nextVals, r, cols, compute); err != nil {
			return err
		}
	}
	return nil
}

func fillValues(dst map[int]*cellValue, r Row, cols []Column, compute func(Row, Column) (string, error)) error {
	for _, col := range cols {
		raw, err := compute(r, col)
		if err != nil {
			return err
		}
		dst[col.Ordinal] = &cellValue{col: col, raw: raw}
	}
	return nil
}

// prevRaw returns the previous row's raw value for the ordinal, or nil when
// there is no previous row.
func (b *lookahead) prevRaw(ordinal int) *string {
	if b.prev == nil {
		return nil
	}
	if c, ok := b.prevVals[ordinal]; ok {
		return &c.raw
	}
	return nil
}

// nextRaw returns the next row's raw value for the ordinal, or nil when the
// source is exhausted.
func (b *lookahead) nextRaw(ordinal int) *string {
	if b.next == nil {
		return nil
	}
	if c, ok := b.nextVals[ordinal]; ok {
		return &c.raw
	}
	return nil
}
