package table

import (
	"fmt"

	"github.com/Velocidex/ordereddict"
)

// ValueMapper is a stateless, read-only view over one Table which projects
// row/column slices into ordered key→value dictionaries, keyed by a header
// row/column (or a caller-supplied alias list).  It never mutates the
// underlying table and has no lifecycle of its own.
type ValueMapper struct {
	table *Table
}

// NewValueMapper binds a mapper to the given table.  The mapper holds a
// non-owning reference: it observes later mutations of the table.
func NewValueMapper(t *Table) ValueMapper {
	return ValueMapper{t}
}

// Projection describes a dictionary-shaped extraction.  The embedded Span
// follows the Table.GetRows / Table.GetColumns conventions; Alias, when
// non-nil, supplies the dictionary keys and must match the width of the
// extracted rectangle.  A nil Alias falls back to the table's header (first
// row for RowProjection, first column for ColumnProjection), matched to the
// extract.
type Projection struct {
	Span
	Alias []string
}

// RowProjection returns the default row-wise projection: every row after
// the header row, full width, keys taken from the header row.
func RowProjection() Projection {
	return Projection{Span{FromRow: 1, FromColumn: 0, Count: End, Length: End}, nil}
}

// ColumnProjection returns the default column-wise projection: every column
// after the header column, full height, keys taken from the header column.
func ColumnProjection() Projection {
	return Projection{Span{FromRow: 0, FromColumn: 1, Count: End, Length: End}, nil}
}

// IndexOfRow locates key by value within column schema and returns the
// matching row index, or -1 when absent.  The schema must be a valid column
// index.
func (p ValueMapper) IndexOfRow(key string, schema int) int {
	p.table.checkColumnIndex(schema)
	//
	for i, row := range p.table.rows {
		if schema < len(row) && row[schema] == key {
			return i
		}
	}
	// Not found
	return -1
}

// IndexOfColumn locates key by value within row schema and returns the
// matching column index, or -1 when absent.  The schema must be a valid row
// index.
func (p ValueMapper) IndexOfColumn(key string, schema int) int {
	p.table.checkRowIndex(schema)
	//
	row := p.table.rows[schema]
	for j, cell := range row {
		if cell == key {
			return j
		}
	}
	// Not found
	return -1
}

// FindInRow resolves the header value row to a pivot row index via column
// schema, then scans that row (excluding the schema position) for the first
// cell equal to value, returning its column index.  Either miss yields -1.
func (p ValueMapper) FindInRow(row string, value string, schema int) int {
	pivot := p.IndexOfRow(row, schema)
	if pivot == -1 {
		return -1
	}
	//
	for j, cell := range p.table.rows[pivot] {
		if j != schema && cell == value {
			return j
		}
	}
	// Not found
	return -1
}

// FindInColumn resolves the header value column to a pivot column index via
// row schema, then scans that column (excluding the schema position) for the
// first cell equal to value, returning its row index.  Either miss yields -1.
func (p ValueMapper) FindInColumn(column string, value string, schema int) int {
	pivot := p.IndexOfColumn(column, schema)
	if pivot == -1 {
		return -1
	}
	//
	for i, row := range p.table.rows {
		if i != schema && pivot < len(row) && row[pivot] == value {
			return i
		}
	}
	// Not found
	return -1
}

// GetRows extracts rows per the projection and zips each with the alias
// keys into one ordered dictionary per row.  An empty underlying table
// yields an empty result rather than failing; an alias whose length differs
// from the extract width is a contract violation.
func (p ValueMapper) GetRows(proj Projection) []*ordereddict.Dict {
	if p.table.IsEmpty() {
		return nil
	}
	//
	rows := p.table.GetRows(proj.Span)
	alias := proj.Alias
	//
	if alias == nil {
		_, width := p.table.resolveSpan(proj.Span, false)
		alias = p.table.rows[0][proj.FromColumn : proj.FromColumn+width]
	}
	//
	return zipDicts(alias, rows)
}

// GetColumns extracts columns per the projection and zips each with the
// alias keys into one ordered dictionary per column.  The alias defaults to
// the table's first column, matched to the extract height.
func (p ValueMapper) GetColumns(proj Projection) []*ordereddict.Dict {
	if p.table.IsEmpty() {
		return nil
	}
	//
	columns := p.table.GetColumns(proj.Span)
	alias := proj.Alias
	//
	if alias == nil {
		_, height := p.table.resolveSpan(proj.Span, true)
		alias = p.table.column(0)[proj.FromRow : proj.FromRow+height]
	}
	//
	return zipDicts(alias, columns)
}

func zipDicts(alias []string, slices [][]string) []*ordereddict.Dict {
	dicts := make([]*ordereddict.Dict, len(slices))
	//
	for i, cells := range slices {
		if len(alias) != len(cells) {
			panic(fmt.Sprintf("alias length %d differs from extract width %d", len(alias), len(cells)))
		}
		//
		dict := ordereddict.NewDict()
		for j, key := range alias {
			dict.Set(key, cells[j])
		}
		//
		dicts[i] = dict
	}
	//
	return dicts
}
