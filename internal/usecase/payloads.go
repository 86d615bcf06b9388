package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/rugby-ingest/internal/domain/ingest"
)

// Ref is an upstream {"$ref": url} pointer.
type Ref struct {
	Ref string `json:"$ref"`
}

// FlexInt decodes integers sent either as JSON numbers or strings.
type FlexInt struct {
	Value int64
	Valid bool
}

func (f *FlexInt) UnmarshalJSON(raw []byte) error {
	text := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if text == "" || text == "null" {
		*f = FlexInt{}
		return nil
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return fmt.Errorf("parse %q as integer: %w", text, err)
	}
	*f = FlexInt{Value: v, Valid: true}
	return nil
}

type refListPage struct {
	Count     int   `json:"count"`
	PageIndex int   `json:"pageIndex"`
	PageCount int   `json:"pageCount"`
	Items     []Ref `json:"items"`
}

type leaguePage struct {
	ID           FlexInt `json:"id"`
	Name         string  `json:"name"`
	Abbreviation string  `json:"abbreviation"`
	Slug         string  `json:"slug"`
	Season       struct {
		Year int `json:"year"`
	} `json:"season"`
}

type leagueSeasonPage struct {
	Year int `json:"year"`
	Type struct {
		HasGroups    bool `json:"hasGroups"`
		HasStandings bool `json:"hasStandings"`
	} `json:"type"`
}

type calendarPage struct {
	EventDate struct {
		Dates []string `json:"dates"`
	} `json:"eventDate"`
}

type eventPage struct {
	Ref          string        `json:"$ref"`
	ID           FlexInt       `json:"id"`
	Date         string        `json:"date"`
	Name         string        `json:"name"`
	ShortName    string        `json:"shortName"`
	TimeValid    bool          `json:"timeValid"`
	Season       Ref           `json:"season"`
	Competitions []competition `json:"competitions"`
}

type competition struct {
	Venue       *venue       `json:"venue"`
	Status      *Ref         `json:"status"`
	Competitors []competitor `json:"competitors"`
}

type venue struct {
	ID       FlexInt  `json:"id"`
	FullName string   `json:"fullName"`
	Grass    bool     `json:"grass"`
	Indoor   bool     `json:"indoor"`
	Address  *address `json:"address"`
}

type address struct {
	City  *string `json:"city"`
	State *string `json:"state"`
}

type competitor struct {
	ID         FlexInt `json:"id"`
	HomeAway   string  `json:"homeAway"`
	Winner     bool    `json:"winner"`
	Score      *Ref    `json:"score"`
	Linescores *Ref    `json:"linescores"`
	Statistics *Ref    `json:"statistics"`
	Roster     *Ref    `json:"roster"`
}

type scorePage struct {
	Value float64 `json:"value"`
}

type statusPage struct {
	Clock *float64 `json:"clock"`
}

type linescoresPage struct {
	Items []struct {
		Period int     `json:"period"`
		Value  float64 `json:"value"`
	} `json:"items"`
}

type statEntry struct {
	Name  string   `json:"name"`
	Value *float64 `json:"value"`
}

type statisticsPage struct {
	Splits struct {
		Categories []struct {
			Stats []statEntry `json:"stats"`
		} `json:"categories"`
	} `json:"splits"`
}

type groupPage struct {
	Standings *Ref `json:"standings"`
}

type standingsPage struct {
	Ref       string          `json:"$ref"`
	Standings []standingEntry `json:"standings"`
}

type standingEntry struct {
	Team    Ref `json:"team"`
	Records []struct {
		Stats []statEntry `json:"stats"`
	} `json:"records"`
}

type teamPage struct {
	ID           FlexInt `json:"id"`
	Name         string  `json:"name"`
	Abbreviation string  `json:"abbreviation"`
	Color        string  `json:"color"`
	Logos        []struct {
		Href string `json:"href"`
	} `json:"logos"`
}

type rosterPage struct {
	Ref     string        `json:"$ref"`
	Entries []rosterEntry `json:"entries"`
}

type rosterEntry struct {
	PlayerID   FlexInt `json:"playerId"`
	Jersey     FlexInt `json:"jersey"`
	Position   *Ref    `json:"position"`
	Athlete    Ref     `json:"athlete"`
	Statistics *Ref    `json:"statistics"`
}

type athletePage struct {
	FirstName   *string  `json:"firstName"`
	LastName    *string  `json:"lastName"`
	Weight      *float64 `json:"weight"`
	Height      *float64 `json:"height"`
	DateOfBirth *string  `json:"dateOfBirth"`
	BirthPlace  *struct {
		Country *string `json:"country"`
	} `json:"birthPlace"`
	Position *struct {
		Name *string `json:"name"`
	} `json:"position"`
}

// flattenStats keeps every named value; null values count as absent.
func flattenStats(entries []statEntry) ingest.Stats {
	out := make(ingest.Stats, len(entries))
	for _, entry := range entries {
		if entry.Name == "" || entry.Value == nil {
			continue
		}
		out[entry.Name] = *entry.Value
	}
	return out
}

var upstreamTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

func parseUpstreamTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range upstreamTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unrecognized date %q", ingest.ErrResolution, value)
}
