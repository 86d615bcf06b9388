package usecase

import "github.com/riskibarqy/rugby-ingest/internal/domain/stadium"

// normalizeStadiums collects distinct venues, first occurrence wins.
func normalizeStadiums(events []eventPage) []stadium.Stadium {
	out := make([]stadium.Stadium, 0, len(events))
	seen := make(map[int64]struct{}, len(events))
	for _, event := range events {
		if len(event.Competitions) == 0 {
			continue
		}
		v := event.Competitions[0].Venue
		if v == nil || !v.ID.Valid {
			continue
		}
		if _, ok := seen[v.ID.Value]; ok {
			continue
		}
		seen[v.ID.Value] = struct{}{}

		item := stadium.Stadium{
			ESPNID: v.ID.Value,
			Name:   v.FullName,
			Grass:  v.Grass,
			Indoor: v.Indoor,
		}
		if v.Address != nil {
			item.City = v.Address.City
			item.State = v.Address.State
		}
		out = append(out, item)
	}
	return out
}
