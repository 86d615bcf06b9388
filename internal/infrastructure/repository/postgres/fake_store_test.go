package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"maps"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

// fakeStore is an in-memory stand-in for postgres that understands the
// statements the writer emits. Transactions work on a copy that replaces
// the committed state on Commit.
type fakeStore struct {
	tables  map[string][]map[string]any
	failOn  func(table string, row map[string]any) error
	begins  int
	commits int
}

func newFakeStore() *fakeStore {
	return &fakeStore{tables: make(map[string][]map[string]any)}
}

func (s *fakeStore) BeginTx(context.Context) (Tx, error) {
	s.begins++
	return &fakeTx{store: s, tables: cloneTables(s.tables)}, nil
}

func (s *fakeStore) rows(table string) []map[string]any {
	return s.tables[table]
}

type fakeTx struct {
	store  *fakeStore
	tables map[string][]map[string]any
	done   bool
}

var (
	existsPattern   = regexp.MustCompile(`^SELECT EXISTS\(SELECT 1 FROM (\w+) WHERE (.*)\)$`)
	nullOrEqPattern = regexp.MustCompile(`\((\w+) IS NULL OR \w+ = \$(\d+)\)`)
	insertPattern   = regexp.MustCompile(`^INSERT INTO (\w+) \(([^)]*)\) VALUES \(([^)]*)\)(?: ON CONFLICT \(([^)]*)\) (DO NOTHING|DO UPDATE SET (.*)))?$`)
	setPattern      = regexp.MustCompile(`(\w+) = EXCLUDED\.\w+`)
)

func (tx *fakeTx) GetContext(_ context.Context, dest any, query string, args ...any) error {
	m := existsPattern.FindStringSubmatch(query)
	if m == nil {
		return fmt.Errorf("fake store: unsupported query %q", query)
	}
	out, ok := dest.(*bool)
	if !ok {
		return fmt.Errorf("fake store: exists needs *bool, got %T", dest)
	}

	type cond struct {
		column string
		value  any
	}
	var conds []cond
	for _, c := range nullOrEqPattern.FindAllStringSubmatch(m[2], -1) {
		idx, _ := strconv.Atoi(c[2])
		conds = append(conds, cond{column: c[1], value: derefValue(args[idx-1])})
	}

	*out = false
	for _, stored := range tx.tables[m[1]] {
		match := true
		for _, c := range conds {
			v := stored[c.column]
			if v == nil {
				continue
			}
			if c.value == nil || !reflect.DeepEqual(v, c.value) {
				match = false
				break
			}
		}
		if match {
			*out = true
			return nil
		}
	}
	return nil
}

func (tx *fakeTx) ExecContext(_ context.Context, query string, args ...any) (sql.Result, error) {
	m := insertPattern.FindStringSubmatch(query)
	if m == nil {
		return nil, fmt.Errorf("fake store: unsupported statement %q", query)
	}
	table := m[1]
	columns := splitList(m[2])
	if len(columns) != len(args) {
		return nil, fmt.Errorf("fake store: %d columns for %d args", len(columns), len(args))
	}
	row := make(map[string]any, len(columns))
	for i, col := range columns {
		row[col] = derefValue(args[i])
	}

	if tx.store.failOn != nil {
		if err := tx.store.failOn(table, row); err != nil {
			return nil, err
		}
	}

	if keys := splitList(m[4]); len(keys) > 0 {
		for _, stored := range tx.tables[table] {
			if !sameKey(stored, row, keys) {
				continue
			}
			if m[5] == "DO NOTHING" {
				return fakeResult(0), nil
			}
			for _, set := range setPattern.FindAllStringSubmatch(m[6], -1) {
				stored[set[1]] = row[set[1]]
			}
			return fakeResult(1), nil
		}
	}

	tx.tables[table] = append(tx.tables[table], row)
	return fakeResult(1), nil
}

func (tx *fakeTx) Commit() error {
	if tx.done {
		return sql.ErrTxDone
	}
	tx.done = true
	tx.store.tables = tx.tables
	tx.store.commits++
	return nil
}

func (tx *fakeTx) Rollback() error {
	if tx.done {
		return sql.ErrTxDone
	}
	tx.done = true
	return nil
}

type fakeResult int64

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return int64(r), nil }

func sameKey(stored, row map[string]any, keys []string) bool {
	for _, k := range keys {
		if !reflect.DeepEqual(stored[k], row[k]) {
			return false
		}
	}
	return true
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func cloneTables(in map[string][]map[string]any) map[string][]map[string]any {
	out := make(map[string][]map[string]any, len(in))
	for table, rows := range in {
		copied := make([]map[string]any, 0, len(rows))
		for _, row := range rows {
			copied = append(copied, maps.Clone(row))
		}
		out[table] = copied
	}
	return out
}
