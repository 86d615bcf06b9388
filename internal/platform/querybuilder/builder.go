package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

type Condition interface {
	appendSQL(buf *strings.Builder, args *[]any, argIndex *int)
}

type nullOrEqCondition struct {
	column string
	value  any
}

// NullOrEq matches rows whose column is NULL or equals value.
func NullOrEq(column string, value any) Condition {
	return nullOrEqCondition{column: column, value: value}
}

func (c nullOrEqCondition) appendSQL(buf *strings.Builder, args *[]any, argIndex *int) {
	buf.WriteString("(")
	buf.WriteString(c.column)
	buf.WriteString(" IS NULL OR ")
	buf.WriteString(c.column)
	buf.WriteString(" = ")
	writeArg(buf, args, argIndex, c.value)
	buf.WriteString(")")
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	var buf strings.Builder
	buf.WriteString("SELECT ")
	buf.WriteString(strings.Join(b.columns, ", "))
	buf.WriteString(" FROM ")
	buf.WriteString(b.table)

	args := make([]any, 0, len(b.where))
	argIndex := 1
	appendWhereClause(&buf, b.where, &args, &argIndex)

	return buf.String(), args, nil
}

// Exists wraps a select as SELECT EXISTS(...), scanning into a single bool.
func Exists(b *SelectBuilder) (string, []any, error) {
	if b == nil {
		return "", nil, fmt.Errorf("exists subquery is required")
	}
	inner, args, err := b.ToSQL()
	if err != nil {
		return "", nil, err
	}
	return "SELECT EXISTS(" + inner + ")", args, nil
}

type conflictAction int

const (
	conflictNone conflictAction = iota
	conflictDoNothing
	conflictDoUpdate
)

type InsertBuilder struct {
	table          string
	columns        []string
	rows           [][]any
	conflictKeys   []string
	conflictAction conflictAction
	updateColumns  []string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.rows = append(b.rows, append([]any(nil), values...))
	return b
}

// OnConflictDoNothing appends ON CONFLICT (keys) DO NOTHING.
func (b *InsertBuilder) OnConflictDoNothing(keys ...string) *InsertBuilder {
	b.conflictKeys = append([]string(nil), keys...)
	b.conflictAction = conflictDoNothing
	return b
}

// OnConflictDoUpdate overwrites columns from EXCLUDED when keys collide.
// Key columns are never part of the SET list.
func (b *InsertBuilder) OnConflictDoUpdate(keys []string, columns ...string) *InsertBuilder {
	b.conflictKeys = append([]string(nil), keys...)
	b.conflictAction = conflictDoUpdate
	b.updateColumns = append([]string(nil), columns...)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("insert table is required")
	}
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("insert columns are required")
	}
	if len(b.rows) == 0 {
		return "", nil, fmt.Errorf("insert values are required")
	}
	if b.conflictAction != conflictNone && len(b.conflictKeys) == 0 {
		return "", nil, fmt.Errorf("conflict keys are required")
	}

	var buf strings.Builder
	buf.WriteString("INSERT INTO ")
	buf.WriteString(b.table)
	buf.WriteString(" (")
	buf.WriteString(strings.Join(b.columns, ", "))
	buf.WriteString(") VALUES ")

	args := make([]any, 0, len(b.rows)*len(b.columns))
	argIndex := 1
	for rowIdx, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", nil, fmt.Errorf("insert row %d has %d values, expected %d", rowIdx, len(row), len(b.columns))
		}
		if rowIdx > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString("(")
		for colIdx, value := range row {
			if colIdx > 0 {
				buf.WriteString(", ")
			}
			writeArg(&buf, &args, &argIndex, value)
		}
		buf.WriteString(")")
	}

	b.appendConflictClause(&buf)

	return buf.String(), args, nil
}

func (b *InsertBuilder) appendConflictClause(buf *strings.Builder) {
	if b.conflictAction == conflictNone {
		return
	}

	buf.WriteString(" ON CONFLICT (")
	buf.WriteString(strings.Join(b.conflictKeys, ", "))
	buf.WriteString(")")

	keys := make(map[string]struct{}, len(b.conflictKeys))
	for _, k := range b.conflictKeys {
		keys[k] = struct{}{}
	}
	sets := make([]string, 0, len(b.updateColumns))
	for _, col := range b.updateColumns {
		if _, isKey := keys[col]; isKey {
			continue
		}
		sets = append(sets, col+" = EXCLUDED."+col)
	}

	if b.conflictAction == conflictDoNothing || len(sets) == 0 {
		buf.WriteString(" DO NOTHING")
		return
	}
	buf.WriteString(" DO UPDATE SET ")
	buf.WriteString(strings.Join(sets, ", "))
}

func appendWhereClause(buf *strings.Builder, conditions []Condition, args *[]any, argIndex *int) {
	if len(conditions) == 0 {
		return
	}
	buf.WriteString(" WHERE ")
	for i, c := range conditions {
		if i > 0 {
			buf.WriteString(" AND ")
		}
		c.appendSQL(buf, args, argIndex)
	}
}

func writeArg(buf *strings.Builder, args *[]any, argIndex *int, value any) {
	buf.WriteString(placeholder(*argIndex))
	*args = append(*args, value)
	*argIndex = *argIndex + 1
}

func placeholder(i int) string {
	return "$" + strconv.Itoa(i)
}
