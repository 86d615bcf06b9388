package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/rugby-ingest/internal/domain/ingest"
)

// SeasonProbe reports the season year an event on date belongs to. Zero
// means no event was found.
type SeasonProbe func(ctx context.Context, date time.Time) (int, error)

// ResolveSeasonBounds picks the first candidate that belongs to season as
// start and the last one, scanning from the end, as end. Candidates must be
// in chronological order.
func ResolveSeasonBounds(ctx context.Context, candidates []time.Time, season int, probe SeasonProbe) (time.Time, time.Time, error) {
	if probe == nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: season probe is required", ingest.ErrInvalidInput)
	}

	probed := make(map[int]int, len(candidates))
	belongs := func(i int) (bool, error) {
		year, ok := probed[i]
		if !ok {
			var err error
			year, err = probe(ctx, candidates[i])
			if err != nil {
				return false, fmt.Errorf("probe season of %s: %w", candidates[i].Format(time.DateOnly), err)
			}
			probed[i] = year
		}
		return year == season, nil
	}

	start := -1
	for i := range candidates {
		ok, err := belongs(i)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		if ok {
			start = i
			break
		}
	}
	if start < 0 {
		return time.Time{}, time.Time{}, &ingest.DateResolutionError{Bound: "start", Season: season, Candidates: candidates}
	}

	end := -1
	for i := len(candidates) - 1; i >= start; i-- {
		ok, err := belongs(i)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		if ok {
			end = i
			break
		}
	}
	if end < 0 {
		return time.Time{}, time.Time{}, &ingest.DateResolutionError{Bound: "end", Season: season, Candidates: candidates}
	}

	return candidates[start], candidates[end], nil
}

// eventSeasonProbe asks the events listing for a single gameday and reads
// the season year from the first event's season reference.
func eventSeasonProbe(r Resolver, run *ingest.Run, leagueID int64) SeasonProbe {
	return func(ctx context.Context, date time.Time) (int, error) {
		endpoint := leagueEndpoint("events_url_by_dates", leagueID).withQuery("dates", date.Format("20060102"))

		var list refListPage
		if err := r.GetEndpoint(ctx, run, endpoint, &list); err != nil {
			return 0, err
		}
		refs := appendRefs(nil, list.Items)
		if len(refs) == 0 {
			return 0, nil
		}

		var event eventPage
		if err := r.Get(ctx, run, refs[0], &event); err != nil {
			return 0, err
		}
		year, err := NumberField(event.Season.Ref, 1)
		if err != nil {
			return 0, err
		}
		return int(year), nil
	}
}
