package ingest

// Policy selects how a batch is applied to its table.
type Policy int

const (
	PolicyInsertIfAbsent Policy = iota + 1
	PolicyInsertOrIgnore
	PolicyUpsert
)

func (p Policy) String() string {
	switch p {
	case PolicyInsertIfAbsent:
		return "insert_if_absent"
	case PolicyInsertOrIgnore:
		return "insert_or_ignore"
	case PolicyUpsert:
		return "upsert"
	default:
		return "unknown"
	}
}

type WriteResult struct {
	Table     string
	Policy    Policy
	Submitted int
	Written   int
}
