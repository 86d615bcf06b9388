package ingest

import "time"

// Run carries the state of one ingestion run. Runs are sequential, so the
// counters need no synchronization.
type Run struct {
	LeagueID   int64
	Season     int
	FullSeason bool
	StartedAt  time.Time

	requests int
	writes   []WriteResult
}

func NewRun(leagueID int64, season int, fullSeason bool) *Run {
	return &Run{
		LeagueID:   leagueID,
		Season:     season,
		FullSeason: fullSeason,
		StartedAt:  time.Now().UTC(),
	}
}

// CountRequest records one successful upstream fetch.
func (r *Run) CountRequest() {
	if r == nil {
		return
	}
	r.requests++
}

func (r *Run) Requests() int {
	if r == nil {
		return 0
	}
	return r.requests
}

func (r *Run) RecordWrite(result WriteResult) {
	if r == nil {
		return
	}
	r.writes = append(r.writes, result)
}

func (r *Run) Writes() []WriteResult {
	if r == nil {
		return nil
	}
	return append([]WriteResult(nil), r.writes...)
}
