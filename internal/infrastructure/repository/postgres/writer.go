package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/rugby-ingest/internal/domain/ingest"
	"github.com/riskibarqy/rugby-ingest/internal/platform/logging"
	qb "github.com/riskibarqy/rugby-ingest/internal/platform/querybuilder"
)

const DefaultBatchSize = 1000

// Table names a target table and how batches are applied to it. Key is the
// conflict target for insert-or-ignore and upsert.
type Table struct {
	Name   string
	Policy ingest.Policy
	Key    []string
}

// Tx is the subset of *sqlx.Tx the writer needs.
type Tx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	Commit() error
	Rollback() error
}

type TxBeginner interface {
	BeginTx(ctx context.Context) (Tx, error)
}

type sqlxBeginner struct {
	db *sqlx.DB
}

// SQLX adapts a sqlx handle to TxBeginner.
func SQLX(db *sqlx.DB) TxBeginner {
	return sqlxBeginner{db: db}
}

func (b sqlxBeginner) BeginTx(ctx context.Context) (Tx, error) {
	tx, err := b.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// Writer applies record batches under one of the ingest policies.
type Writer struct {
	db        TxBeginner
	batchSize int
	logger    *logging.Logger
}

func NewWriter(db TxBeginner, batchSize int, logger *logging.Logger) *Writer {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Writer{
		db:        db,
		batchSize: batchSize,
		logger:    logger.With("component", "ingest_writer"),
	}
}

// Write persists rows in batches of batchSize. Each batch commits on its own,
// so a failure leaves earlier batches in place.
func (w *Writer) Write(ctx context.Context, run *ingest.Run, table Table, rows []qb.Row) (ingest.WriteResult, error) {
	result := ingest.WriteResult{Table: table.Name, Policy: table.Policy, Submitted: len(rows)}

	if strings.TrimSpace(table.Name) == "" {
		return result, fmt.Errorf("%w: table name is required", ingest.ErrInvalidInput)
	}
	if len(rows) == 0 {
		return result, fmt.Errorf("%w: records for %s", ingest.ErrEmptyBatch, table.Name)
	}
	switch table.Policy {
	case ingest.PolicyInsertIfAbsent:
	case ingest.PolicyInsertOrIgnore, ingest.PolicyUpsert:
		if len(table.Key) == 0 {
			return result, fmt.Errorf("%w: %s policy on %s requires a key", ingest.ErrInvalidInput, table.Policy, table.Name)
		}
	default:
		return result, fmt.Errorf("%w: unknown write policy %d for %s", ingest.ErrInvalidInput, table.Policy, table.Name)
	}

	for start := 0; start < len(rows); start += w.batchSize {
		end := min(start+w.batchSize, len(rows))
		written, err := w.writeBatch(ctx, table, rows[start:end], start)
		if err != nil {
			return result, err
		}
		result.Written += written
	}

	w.logger.InfoContext(ctx, "records written",
		"table", result.Table,
		"policy", result.Policy.String(),
		"written", result.Written,
		"submitted", result.Submitted,
	)
	run.RecordWrite(result)
	return result, nil
}

func (w *Writer) writeBatch(ctx context.Context, table Table, batch []qb.Row, offset int) (int, error) {
	tx, err := w.db.BeginTx(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx %s: %w", table.Name, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	columns := qb.MergeColumns(batch)
	written := 0
	for i, row := range batch {
		n, err := w.writeRow(ctx, tx, table, columns, row)
		if err != nil {
			w.logger.ErrorContext(ctx, "write record failed",
				"table", table.Name,
				"policy", table.Policy.String(),
				"index", offset+i,
				"record", recordFields(row),
				"error", err,
			)
			return 0, fmt.Errorf("write %s record %d: %w", table.Name, offset+i, err)
		}
		written += n
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit tx %s: %w", table.Name, err)
	}
	return written, nil
}

func (w *Writer) writeRow(ctx context.Context, tx Tx, table Table, columns []string, row qb.Row) (int, error) {
	if table.Policy == ingest.PolicyInsertIfAbsent {
		exists, err := recordExists(ctx, tx, table.Name, row)
		if err != nil {
			return 0, err
		}
		if exists {
			return 0, nil
		}
	}

	builder := qb.InsertInto(table.Name).
		Columns(columns...).
		Values(row.ValuesFor(columns)...)
	switch table.Policy {
	case ingest.PolicyInsertOrIgnore:
		builder.OnConflictDoNothing(table.Key...)
	case ingest.PolicyUpsert:
		builder.OnConflictDoUpdate(table.Key, columns...)
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build insert %s query: %w", table.Name, err)
	}
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("insert %s: %w", table.Name, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected %s: %w", table.Name, err)
	}
	return int(affected), nil
}

// recordExists treats a stored NULL as matching any candidate value.
func recordExists(ctx context.Context, tx Tx, table string, row qb.Row) (bool, error) {
	conditions := make([]qb.Condition, 0, len(row.Columns))
	for i, col := range row.Columns {
		conditions = append(conditions, qb.NullOrEq(col, row.Values[i]))
	}

	query, args, err := qb.Exists(qb.Select("1").From(table).Where(conditions...))
	if err != nil {
		return false, fmt.Errorf("build exists %s query: %w", table, err)
	}

	var exists bool
	if err := tx.GetContext(ctx, &exists, query, args...); err != nil {
		return false, fmt.Errorf("check %s record exists: %w", table, err)
	}
	return exists, nil
}

func recordFields(row qb.Row) map[string]any {
	out := make(map[string]any, len(row.Columns))
	for i, col := range row.Columns {
		out[col] = derefValue(row.Values[i])
	}
	return out
}
