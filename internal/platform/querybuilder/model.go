package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// Row is an ordered set of column/value pairs for one record.
type Row struct {
	Columns []string
	Values  []any
}

// RowFromModel reads exported fields tagged with `db`. Nil pointers bind
// NULL.
func RowFromModel(model any) (Row, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return Row{}, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return Row{}, fmt.Errorf("model must be struct")
	}

	typ := value.Type()
	row := Row{
		Columns: make([]string, 0, typ.NumField()),
		Values:  make([]any, 0, typ.NumField()),
	}
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.PkgPath != "" {
			continue
		}
		tag := strings.TrimSpace(field.Tag.Get("db"))
		if tag == "" || tag == "-" {
			continue
		}
		col, _, _ := strings.Cut(tag, ",")
		col = strings.TrimSpace(col)
		if col == "" || col == "-" {
			continue
		}
		row.Add(col, value.Field(i).Interface())
	}

	if len(row.Columns) == 0 {
		return Row{}, fmt.Errorf("model has no db columns")
	}
	return row, nil
}

// Add sets a column, replacing the value if the column is already present.
func (r *Row) Add(column string, value any) {
	for i, c := range r.Columns {
		if c == column {
			r.Values[i] = value
			return
		}
	}
	r.Columns = append(r.Columns, column)
	r.Values = append(r.Values, value)
}

func (r Row) Value(column string) (any, bool) {
	for i, c := range r.Columns {
		if c == column {
			return r.Values[i], true
		}
	}
	return nil, false
}

// ValuesFor lines the row up against columns; absent columns bind nil.
func (r Row) ValuesFor(columns []string) []any {
	out := make([]any, len(columns))
	for i, col := range columns {
		out[i], _ = r.Value(col)
	}
	return out
}

// MergeColumns returns the union of all row columns in first-seen order.
func MergeColumns(rows []Row) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, row := range rows {
		for _, col := range row.Columns {
			if _, ok := seen[col]; ok {
				continue
			}
			seen[col] = struct{}{}
			out = append(out, col)
		}
	}
	return out
}
