// Package tabwalk is a streaming table-rendering engine. It walks an
// ordered row collection with a three-row lookahead, detects multi-level
// group boundaries (runs of equal values in grouped columns), and drives a
// fixed sequence of format-agnostic emission callbacks, so the same
// grouping and decoration logic backs HTML, text, CSV, Markdown, and Excel
// output without duplication.
//
// # Model and Engine
//
// A [TableModel] carries the ordered [Column] definitions, the row
// collection with an optional page window, the optional observers, and the
// rendering [Properties]. An [Engine] renders one model through a [Sink]:
//
//	m := tabwalk.NewTableModel([]tabwalk.Column{
//		{Ordinal: 0, Title: "City", Group: 0},
//		{Ordinal: 1, Title: "Name"},
//	})
//	m.SetRows(items...)
//	err := tabwalk.NewEngine(tabwalk.NewHTMLSink(os.Stdout)).Render(m, "t1")
//
// Cell text comes from the model's [CellValuer]; when none is set, row
// items must implement [Rower] and cells are indexed by column ordinal.
//
// # Grouping
//
// A column with a grouping level takes part in run detection. For each row
// the engine reports one [GroupTransition] per grouped column: GroupStart
// and GroupEnd bracket a maximal run of equal values, and a run of length
// one reports GroupStartAndEnd. Levels nest: when a shallower level closes
// on a row, every deeper level closes on that row too, whether or not its
// own value changed. Without a [RowDecorator], a grouped column shows its
// value only on rows that start a run.
//
// # Decoration
//
// Two independent observers can be attached to a model:
//
//   - [RowDecorator] — notified of row entries and group boundaries, and
//     asked for the displayed text of every grouped cell.
//   - [Totaler] — a silent accumulator notified of the same boundaries;
//     [GroupTally] is a ready-made implementation sinks can query when
//     writing footers.
//
// # Sinks
//
// [Sink] is the output contract: a fixed set of ordered callbacks for
// banners, structural open/close, header, footers, and per-row emission.
// [BaseSink] provides no-op defaults for embedding. Concrete sinks are
// [HTMLSink], [TextSink], [CSVSink], [MarkdownSink], and [ExcelSink].
//
// # Concurrency and Errors
//
// A render runs synchronously to completion. Pipeline state is created per
// Render call, but sinks, decorators, and totalers carry per-render mutable
// state: use fresh instances per concurrent render. The first error from a
// callback or valuer aborts the render and is returned wrapped in a
// [RenderError] with the cause preserved; output emitted before the
// failure is incomplete and the caller must discard it.
package tabwalk
