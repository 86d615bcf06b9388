package postgres

import (
	"database/sql"
	"database/sql/driver"
	"reflect"
	"time"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/rugby-ingest/internal/domain/ingest"
)

func nullString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}

func nullInt64(value *int64) sql.NullInt64 {
	if value == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *value, Valid: true}
}

func nullInt32(value *int) sql.NullInt32 {
	if value == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(*value), Valid: true}
}

func nullFloat64(value *float64) sql.NullFloat64 {
	if value == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *value, Valid: true}
}

func nullTime(value *time.Time) sql.NullTime {
	if value == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *value, Valid: true}
}

// encodeJSONMap renders stats for a JSONB column. Keys are sorted so equal
// maps encode to equal text.
func encodeJSONMap(value ingest.Stats) string {
	if len(value) == 0 {
		return "{}"
	}
	encoded, err := sonic.ConfigStd.Marshal(map[string]float64(value))
	if err != nil {
		return "{}"
	}
	return string(encoded)
}

// derefValue unwraps Valuers and pointers into plain values for logging.
func derefValue(value any) any {
	if valuer, ok := value.(driver.Valuer); ok {
		v, err := valuer.Value()
		if err != nil {
			return nil
		}
		return v
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		return rv.Elem().Interface()
	}
	return value
}
