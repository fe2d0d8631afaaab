package tabwalk

import (
	"io"

	"github.com/charmbracelet/log"
)

// Engine drives a render pass against a single sink. The engine itself
// holds no per-render state; a fresh pipeline (lookahead buffer and group
// counters) is created inside each Render call and discarded at the end.
// Concurrent renders must not share a sink, decorator or totaler instance.
type Engine struct {
	sink Sink
	log  *log.Logger
}

// NewEngine creates an engine writing through the given sink. Debug logging
// is discarded unless a logger is attached with [Engine.SetLogger].
func NewEngine(sink Sink) *Engine {
	return &Engine{sink: sink, log: log.New(io.Discard)}
}

// SetLogger attaches a logger for debug output. A nil logger is ignored.
func (e *Engine) SetLogger(l *log.Logger) {
	if l != nil {
		e.log = l
	}
}

// Render writes the table described by m through the engine's sink. id is
// used in diagnostics only.
//
// When the current page is empty and the properties say the table hides
// when empty, only EmptyListMessage fires. Otherwise the callbacks fire
// strictly in this order: TopBanner, TableOpener, Caption (if a caption is
// configured), TableHeader (if headers are enabled), PreBodyFooter (if a
// footer is configured), TableBodyOpener, the body (see below),
// TableBodyCloser, PostBodyFooter (if a footer is configured), TableCloser,
// DecoratedTableFinish (if a row decorator is configured), BottomBanner.
//
// The first error from a callback or valuer aborts the render; it is
// returned wrapped in a single [RenderError] with the cause preserved.
// There is no retry and no partial-result guarantee.
func (e *Engine) Render(m *TableModel, id string) error {
	if err := e.render(m, id); err != nil {
		return &RenderError{TableID: id, Err: err}
	}
	return nil
}

func (e *Engine) render(m *TableModel, id string) error {
	e.log.Debug("render start", "table", id, "media", m.Media)

	if len(m.pageRows) == 0 && !m.Properties.EmptyListShowTable {
		return e.sink.EmptyListMessage(m.Properties.EmptyListMessage)
	}

	if err := e.sink.TopBanner(m); err != nil {
		return err
	}
	if err := e.sink.TableOpener(m); err != nil {
		return err
	}
	if m.Caption != "" {
		if err := e.sink.Caption(m); err != nil {
			return err
		}
	}
	if m.Properties.ShowHeader {
		if err := e.sink.TableHeader(m); err != nil {
			return err
		}
	}
	if m.Footer != "" {
		if err := e.sink.PreBodyFooter(m); err != nil {
			return err
		}
	}
	if err := e.sink.TableBodyOpener(m); err != nil {
		return err
	}
	if err := e.writeBody(m, id); err != nil {
		return err
	}
	if err := e.sink.TableBodyCloser(m); err != nil {
		return err
	}
	if m.Footer != "" {
		if err := e.sink.PostBodyFooter(m); err != nil {
			return err
		}
	}
	if err := e.sink.TableCloser(m); err != nil {
		return err
	}
	if m.Decorator != nil {
		if err := e.sink.DecoratedTableFinish(m); err != nil {
			return err
		}
	}
	if err := e.sink.BottomBanner(m); err != nil {
		return err
	}

	e.log.Debug("render end", "table", id)
	return nil
}

// writeBody walks the rows with a three-slot lookahead, detects group
// transitions per column in ordinal order, notifies the decoration
// protocol, and emits the per-row callbacks.
func (e *Engine) writeBody(m *TableModel, id string) error {
	// Export media may request the full, unpaged collection.
	full := m.Media != MediaHTML && m.Properties.ExportFullList
	it := m.rowIter(full)

	totaler := m.Totaler
	if totaler == nil {
		totaler = noopTotaler{}
	}
	decorator := m.Decorator

	compute := cellCompute(m)
	buf := newLookahead(len(m.Columns))
	var state groupState

	for buf.next != nil || it.hasNext() {
		if err := buf.advance(it, m.Columns, compute); err != nil {
			return err
		}
		cur := *buf.cur
		absolute := cur.Number + it.pageOffset

		if decorator != nil {
			decorator.EnterRow(cur.Item, cur.Number, absolute)
		}
		totaler.EnterRow(cur.Number, absolute)

		state.reset()
		cells := make([]*cellValue, 0, len(m.Columns))
		for _, col := range m.Columns {
			cell := buf.curVals[col.Ordinal]
			cell.decorated = cell.raw

			if col.Group != NoGroup {
				tr := state.transition(cell.raw, buf.prevRaw(col.Ordinal), buf.nextRaw(col.Ordinal), col.Group)

				if decorator != nil || m.Totaler != nil {
					switch tr {
					case GroupStart:
						totaler.StartGroup(cell.raw, col.Group)
						if decorator != nil {
							decorator.StartOfGroup(cell.raw, col.Group)
						}
					case GroupEnd:
						totaler.StopGroup(cell.raw, col.Group)
						if decorator != nil {
							decorator.EndOfGroup(cell.raw, col.Group)
						}
					case GroupStartAndEnd:
						totaler.StartGroup(cell.raw, col.Group)
						if decorator != nil {
							decorator.StartOfGroup(cell.raw, col.Group)
						}
						totaler.StopGroup(cell.raw, col.Group)
						if decorator != nil {
							decorator.EndOfGroup(cell.raw, col.Group)
						}
					}
				}

				if decorator != nil {
					cell.decorated = decorator.DisplayGroupedValue(cell.raw, tr, col.Ordinal)
				} else if tr == GroupEnd || tr == GroupNone {
					// A grouped column without a decorator only shows its
					// value at the start of a run.
					cell.decorated = ""
				}
			}
			cells = append(cells, cell)
		}

		if m.Totaler != nil {
			if err := e.sink.SubgroupStart(m); err != nil {
				return err
			}
		}
		if decorator != nil {
			if err := e.sink.DecoratedRowStart(m); err != nil {
				return err
			}
		}
		if err := e.sink.RowOpener(cur); err != nil {
			return err
		}
		for _, cell := range cells {
			if err := e.sink.ColumnOpener(cell.col); err != nil {
				return err
			}
			if err := e.sink.ColumnValue(cell.decorated, cell.col); err != nil {
				return err
			}
			if err := e.sink.ColumnCloser(cell.col); err != nil {
				return err
			}
		}
		if len(m.Columns) == 0 {
			e.log.Debug("table has no columns", "table", id, "row", cur.Number)
			if err := e.sink.RowWithNoColumns(stringify(cur.Item)); err != nil {
				return err
			}
		}
		if err := e.sink.RowCloser(cur); err != nil {
			return err
		}
		if decorator != nil {
			if err := e.sink.DecoratedRowFinish(m); err != nil {
				return err
			}
		}
		if m.Totaler != nil {
			if err := e.sink.SubgroupStop(m); err != nil {
				return err
			}
		}
	}

	if it.empty() {
		return e.sink.EmptyListRowMessage(m.Properties.emptyRowMessage(len(m.Columns)))
	}
	return nil
}

// cellCompute selects the valuer mode once for the whole render: the linked
// presentation for interactive media, the plain value for export media.
func cellCompute(m *TableModel) func(Row, Column) (string, error) {
	valuer := m.Valuer
	if valuer == nil {
		valuer = RowerValuer{}
	}
	if m.Media == MediaHTML {
		return valuer.DisplayValue
	}
	return valuer.ExportValue
}
