package tabwalk

// Sink receives the ordered emission callbacks that build a table in some
// concrete format. The engine guarantees the invocation order documented on
// [Engine.Render]; no callback fires out of order or more than the stated
// number of times per row or table. Any error returned aborts the render
// and is wrapped once in a [RenderError].
//
// Embed [BaseSink] to implement only the callbacks a format cares about.
type Sink interface {
	// EmptyListMessage is the only callback fired when the table is empty
	// and configured to hide.
	EmptyListMessage(msg string) error

	TopBanner(m *TableModel) error
	TableOpener(m *TableModel) error
	Caption(m *TableModel) error
	TableHeader(m *TableModel) error
	PreBodyFooter(m *TableModel) error
	TableBodyOpener(m *TableModel) error

	// Per-row callbacks, in emission order.
	SubgroupStart(m *TableModel) error
	DecoratedRowStart(m *TableModel) error
	RowOpener(r Row) error
	ColumnOpener(c Column) error
	ColumnValue(value string, c Column) error
	ColumnCloser(c Column) error
	RowWithNoColumns(value string) error
	RowCloser(r Row) error
	DecoratedRowFinish(m *TableModel) error
	SubgroupStop(m *TableModel) error

	// EmptyListRowMessage fires once after the body loop when the iterated
	// row collection was empty. The message already carries the formatted
	// column count.
	EmptyListRowMessage(msg string) error

	TableBodyCloser(m *TableModel) error
	PostBodyFooter(m *TableModel) error
	TableCloser(m *TableModel) error
	DecoratedTableFinish(m *TableModel) error
	BottomBanner(m *TableModel) error
}

// BaseSink is a no-op implementation of every Sink callback.
type BaseSink struct{}

func (BaseSink) EmptyListMessage(string) error { return nil }
func (BaseSink) TopBanner(*TableModel) error { return nil }
func (BaseSink) TableOpener(*TableModel) error { return nil }
func (BaseSink) Caption(*TableModel) error { return nil }
func (BaseSink) TableHeader(*TableModel) error { return nil }
func (BaseSink) PreBodyFooter(*TableModel) error { return nil }
func (BaseSink) TableBodyOpener(*TableModel) error { return nil }
func (BaseSink) SubgroupStart(*TableModel) error { return nil }
func (BaseSink) DecoratedRowStart(*TableModel) error { return nil }
func (BaseSink) RowOpener(Row) error { return nil }
func (BaseSink) ColumnOpener(Column) error { return nil }
func (BaseSink) ColumnValue(string, Column) error { return nil }
func (BaseSink) ColumnCloser(Column) error { return nil }
func (BaseSink) RowWithNoColumns(string) error { return nil }
func (BaseSink) RowCloser(Row) error { return nil }
func (BaseSink) DecoratedRowFinish(*TableModel) error { return nil }
func (BaseSink) SubgroupStop(*TableModel) error { return nil }
func (BaseSink) EmptyListRowMessage(string) error { return nil }
func (BaseSink) TableBodyCloser(*TableModel) error { return nil }
func (BaseSink) PostBodyFooter(*TableModel) error { return nil }
func (BaseSink) TableCloser(*TableModel) error { return nil }
func (BaseSink) DecoratedTableFinish(*TableModel) error { return nil }
func (BaseSink) BottomBanner(*TableModel) error { return nil }
