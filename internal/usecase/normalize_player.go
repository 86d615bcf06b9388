package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/rugby-ingest/internal/domain/ingest"
	"github.com/riskibarqy/rugby-ingest/internal/domain/player"
	"github.com/riskibarqy/rugby-ingest/internal/platform/id"
)

const (
	lbsPerKg       = 2.211
	inchesPerMeter = 39.37
)

// fetchRosters loads the roster of every competitor in events.
func (n *normalizer) fetchRosters(ctx context.Context, events []eventPage) ([]rosterPage, error) {
	var out []rosterPage
	for _, event := range events {
		if len(event.Competitions) == 0 {
			continue
		}
		for _, c := range event.Competitions[0].Competitors {
			ref := refOf(c.Roster)
			if ref == "" {
				n.logger.WarnContext(ctx, "competitor has no roster", "match_id", event.ID.Value, "team_id", c.ID.Value)
				continue
			}
			var page rosterPage
			if err := n.get(ctx, ref, &page); err != nil {
				return nil, fmt.Errorf("fetch roster: %w", err)
			}
			if page.Ref == "" {
				page.Ref = ref
			}
			out = append(out, page)
		}
	}
	return out, nil
}

// normalizePlayers fetches each distinct athlete once.
func (n *normalizer) normalizePlayers(ctx context.Context, rosters []rosterPage) ([]player.Player, error) {
	var out []player.Player
	seen := make(map[int64]struct{})
	for _, roster := range rosters {
		for _, entry := range roster.Entries {
			if !entry.PlayerID.Valid {
				return nil, fmt.Errorf("%w: roster %s entry has no player id", ingest.ErrResolution, roster.Ref)
			}
			playerID := entry.PlayerID.Value
			if _, ok := seen[playerID]; ok {
				continue
			}
			seen[playerID] = struct{}{}

			var page athletePage
			if err := n.get(ctx, entry.Athlete.Ref, &page); err != nil {
				return nil, fmt.Errorf("fetch athlete %d: %w", playerID, err)
			}
			item, err := buildPlayer(playerID, page)
			if err != nil {
				return nil, err
			}
			out = append(out, item)
		}
	}
	return out, nil
}

func buildPlayer(playerID int64, page athletePage) (player.Player, error) {
	if page.FirstName == nil || page.LastName == nil {
		return player.Player{}, fmt.Errorf("%w: athlete %d is missing a name", ingest.ErrResolution, playerID)
	}

	item := player.Player{
		ESPNID:    playerID,
		FirstName: *page.FirstName,
		LastName:  *page.LastName,
	}
	if page.Weight != nil {
		kg := *page.Weight / lbsPerKg
		item.Weight = &kg
	}
	if page.Height != nil {
		m := *page.Height / inchesPerMeter
		item.Height = &m
	}
	if page.DateOfBirth != nil {
		born, err := parseUpstreamTime(*page.DateOfBirth)
		if err != nil {
			return player.Player{}, fmt.Errorf("athlete %d birth date: %w", playerID, err)
		}
		item.BirthDate = &born
	}
	if page.BirthPlace != nil {
		item.BirthPlace = page.BirthPlace.Country
	}
	if page.Position != nil {
		item.PositionName = page.Position.Name
	}

	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ingest.ErrResolution, err)
	}
	return item, nil
}

// normalizeAppearances builds the player-team links for season and one
// match stat per roster entry.
func (n *normalizer) normalizeAppearances(ctx context.Context, rosters []rosterPage, season int) ([]player.TeamMembership, []player.MatchStat, error) {
	var memberships []player.TeamMembership
	var stats []player.MatchStat
	seen := make(map[string]struct{})

	for _, roster := range rosters {
		teamID, err := NumberField(roster.Ref, 3)
		if err != nil {
			return nil, nil, fmt.Errorf("roster team id: %w", err)
		}
		matchID, err := NumberField(roster.Ref, 1)
		if err != nil {
			return nil, nil, fmt.Errorf("roster match id: %w", err)
		}

		for _, entry := range roster.Entries {
			if !entry.PlayerID.Valid {
				return nil, nil, fmt.Errorf("%w: roster %s entry has no player id", ingest.ErrResolution, roster.Ref)
			}
			playerID := entry.PlayerID.Value

			ptUID, err := id.UID(teamID, playerID, season)
			if err != nil {
				return nil, nil, err
			}
			pmsUID, err := id.UID(ptUID, matchID)
			if err != nil {
				return nil, nil, err
			}

			if !entry.Jersey.Valid {
				return nil, nil, fmt.Errorf("%w: player %d in match %d has no jersey", ingest.ErrResolution, playerID, matchID)
			}
			code, err := NumberField(refOf(entry.Position), 0)
			if err != nil {
				return nil, nil, fmt.Errorf("player %d position: %w", playerID, err)
			}
			name, err := positionName(code)
			if err != nil {
				return nil, nil, err
			}

			if _, ok := seen[ptUID]; !ok {
				seen[ptUID] = struct{}{}
				memberships = append(memberships, player.TeamMembership{
					UID:          ptUID,
					PlayerESPNID: playerID,
					TeamESPNID:   teamID,
					Season:       season,
				})
			}

			jersey := int(entry.Jersey.Value)
			item := player.MatchStat{
				UID:           pmsUID,
				PlayerTeamUID: ptUID,
				MatchESPNID:   matchID,
				Jersey:        &jersey,
				PositionName:  name,
				IsFirstChoice: isFirstChoice(entry.Jersey.Value, code),
				Stats:         ingest.Stats{},
			}
			if ref := refOf(entry.Statistics); ref != "" {
				s, err := n.fetchStats(ctx, ref)
				if err != nil {
					return nil, nil, fmt.Errorf("player %d match %d: %w", playerID, matchID, err)
				}
				item.Stats = s
			} else {
				n.logger.WarnContext(ctx, "player statistics missing", "match_id", matchID, "player_id", playerID)
			}
			stats = append(stats, item)
		}
	}
	return memberships, stats, nil
}
