package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/rugby-ingest/internal/domain/ingest"
	"github.com/riskibarqy/rugby-ingest/internal/domain/match"
	"github.com/riskibarqy/rugby-ingest/internal/platform/id"
)

// fetchEvents loads every event page behind refs and drops events whose
// time is not confirmed upstream.
func (n *normalizer) fetchEvents(ctx context.Context, refs []string) ([]eventPage, error) {
	out := make([]eventPage, 0, len(refs))
	for _, ref := range refs {
		var event eventPage
		if err := n.get(ctx, ref, &event); err != nil {
			return nil, fmt.Errorf("fetch event: %w", err)
		}
		if !event.TimeValid {
			n.logger.WarnContext(ctx, "skipping event with unconfirmed time", "ref", ref)
			continue
		}
		if event.Ref == "" {
			event.Ref = ref
		}
		out = append(out, event)
	}
	return out, nil
}

type sides struct {
	home, away competitor
}

func eventSides(event eventPage) (competition, sides, error) {
	if len(event.Competitions) == 0 {
		return competition{}, sides{}, fmt.Errorf("%w: event %s has no competitions", ingest.ErrResolution, event.Ref)
	}
	comp := event.Competitions[0]

	var out sides
	var hasHome, hasAway bool
	for _, c := range comp.Competitors {
		switch c.HomeAway {
		case "home":
			out.home, hasHome = c, true
		case "away":
			out.away, hasAway = c, true
		default:
			return competition{}, sides{}, fmt.Errorf("%w: event %s competitor %d has side %q", ingest.ErrResolution, event.Ref, c.ID.Value, c.HomeAway)
		}
	}
	if !hasHome || !hasAway || !out.home.ID.Valid || !out.away.ID.Valid {
		return competition{}, sides{}, fmt.Errorf("%w: event %s is missing a home or away competitor", ingest.ErrResolution, event.Ref)
	}
	return comp, out, nil
}

func (n *normalizer) fetchScore(ctx context.Context, c competitor) (float64, error) {
	ref := refOf(c.Score)
	if ref == "" {
		return 0, fmt.Errorf("%w: competitor %d has no score reference", ingest.ErrResolution, c.ID.Value)
	}
	var page scorePage
	if err := n.get(ctx, ref, &page); err != nil {
		return 0, fmt.Errorf("fetch score: %w", err)
	}
	return page.Value, nil
}

// normalizeMatches builds one Match per distinct event id. Without a
// flagged winner the match is a draw: away is stored as winner and both
// scores take the last competitor's score.
func (n *normalizer) normalizeMatches(ctx context.Context, events []eventPage, leagueUID string) ([]match.Match, error) {
	out := make([]match.Match, 0, len(events))
	seen := make(map[int64]struct{}, len(events))
	for _, event := range events {
		if !event.ID.Valid {
			return nil, fmt.Errorf("%w: event %s has no id", ingest.ErrResolution, event.Ref)
		}
		if _, ok := seen[event.ID.Value]; ok {
			continue
		}
		seen[event.ID.Value] = struct{}{}

		comp, s, err := eventSides(event)
		if err != nil {
			return nil, err
		}
		date, err := parseUpstreamTime(event.Date)
		if err != nil {
			return nil, fmt.Errorf("event %d date: %w", event.ID.Value, err)
		}

		item := match.Match{
			ESPNID:         event.ID.Value,
			Date:           date,
			Name:           event.Name,
			ShortName:      event.ShortName,
			LeagueUID:      leagueUID,
			HomeTeamESPNID: s.home.ID.Value,
			AwayTeamESPNID: s.away.ID.Value,
		}

		var winner, loser competitor
		switch {
		case s.home.Winner:
			winner, loser = s.home, s.away
		case s.away.Winner:
			winner, loser = s.away, s.home
		default:
			item.IsDraw = true
		}

		if item.IsDraw {
			last := comp.Competitors[len(comp.Competitors)-1]
			score, err := n.fetchScore(ctx, last)
			if err != nil {
				return nil, fmt.Errorf("event %d: %w", item.ESPNID, err)
			}
			item.WinnerESPNID, item.LoserESPNID = s.away.ID.Value, s.home.ID.Value
			item.WinnerScore, item.LoserScore = score, score
		} else {
			if item.WinnerScore, err = n.fetchScore(ctx, winner); err != nil {
				return nil, fmt.Errorf("event %d: %w", item.ESPNID, err)
			}
			if item.LoserScore, err = n.fetchScore(ctx, loser); err != nil {
				return nil, fmt.Errorf("event %d: %w", item.ESPNID, err)
			}
			item.WinnerESPNID, item.LoserESPNID = winner.ID.Value, loser.ID.Value
		}

		if comp.Venue != nil && comp.Venue.ID.Valid {
			venueID := comp.Venue.ID.Value
			item.StadiumESPNID = &venueID
		} else {
			n.logger.WarnContext(ctx, "event has no venue", "match_id", item.ESPNID)
		}

		if ref := refOf(comp.Status); ref != "" {
			var status statusPage
			if err := n.get(ctx, ref, &status); err != nil {
				return nil, fmt.Errorf("event %d status: %w", item.ESPNID, err)
			}
			item.TotalPlayTime = status.Clock
		} else {
			n.logger.WarnContext(ctx, "event has no status reference", "match_id", item.ESPNID)
		}

		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ingest.ErrResolution, err)
		}
		out = append(out, item)
	}
	return out, nil
}

// normalizeTeamStats builds one line per competitor per event. Linescores
// and statistics references are optional; a present one must resolve.
func (n *normalizer) normalizeTeamStats(ctx context.Context, events []eventPage) ([]match.TeamStat, error) {
	var out []match.TeamStat
	seen := make(map[string]struct{})
	for _, event := range events {
		_, s, err := eventSides(event)
		if err != nil {
			return nil, err
		}

		for _, pair := range [][2]competitor{{s.home, s.away}, {s.away, s.home}} {
			self, opponent := pair[0], pair[1]
			uid, err := id.UID(event.ID.Value, self.ID.Value)
			if err != nil {
				return nil, err
			}
			if _, ok := seen[uid]; ok {
				continue
			}
			seen[uid] = struct{}{}

			item := match.TeamStat{
				UID:            uid,
				MatchESPNID:    event.ID.Value,
				TeamESPNID:     self.ID.Value,
				OpponentESPNID: opponent.ID.Value,
				Stats:          ingest.Stats{},
			}

			if ref := refOf(self.Linescores); ref != "" {
				ls, err := n.fetchLinescores(ctx, ref)
				if err != nil {
					return nil, fmt.Errorf("event %d team %d linescores: %w", item.MatchESPNID, item.TeamESPNID, err)
				}
				item.Linescore1stHalf = ls.firstHalf
				item.Linescore2ndHalf = ls.secondHalf
				item.Linescore20min = ls.at20
				item.Linescore60min = ls.at60
			} else {
				n.logger.WarnContext(ctx, "competitor has no linescores", "match_id", item.MatchESPNID, "team_id", item.TeamESPNID)
			}

			if ref := refOf(self.Statistics); ref != "" {
				stats, err := n.fetchStats(ctx, ref)
				if err != nil {
					return nil, fmt.Errorf("event %d team %d statistics: %w", item.MatchESPNID, item.TeamESPNID, err)
				}
				item.Stats = stats
			} else {
				n.logger.WarnContext(ctx, "competitor has no statistics", "match_id", item.MatchESPNID, "team_id", item.TeamESPNID)
			}

			out = append(out, item)
		}
	}
	return out, nil
}
