package tabwalk

import "fmt"

// CellValuer is the external value-accessor boundary. Given a row and a
// column it returns the presentation string for that cell. The pipeline
// calls exactly one of the two methods for all cells of a render, selected
// by the model's media: DisplayValue for interactive, linked presentation
// and ExportValue for plain export output.
type CellValuer interface {
	DisplayValue(row Row, col Column) (string, error)
	ExportValue(row Row, col Column) (string, error)
}

// RowerValuer is the default valuer. It expects row items to implement
// [Rower] and indexes the returned cells by column ordinal. Both modes
// return the same text; ordinals past the end of the item's cells yield an
// empty string.
type RowerValuer struct{}

// DisplayValue implements CellValuer.
func (RowerValuer) DisplayValue(row Row, col Column) (string, error) {
	return rowerCell(row, col)
}

// ExportValue implements CellValuer.
func (RowerValuer) ExportValue(row Row, col Column) (string, error) {
	return rowerCell(row, col)
}

func rowerCell(row Row, col Column) (string, error) {
	r, ok := row.Item.(Rower)
	if !ok {
		return "", fmt.Errorf("%w: row %d item %T does not implement Rower", ErrMissingInterface, row.Number, row.Item)
	}
	cells := r.Row()
	if col.Ordinal < 0 || col.Ordinal >= len(cells) {
		return "", nil
	}
	return cells[col.Ordinal], nil
}
