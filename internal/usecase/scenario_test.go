package usecase

const espnBase = "http://core.espn.test/v2/sports/rugby"

const (
	scenarioLeague = 270559
	eventRef       = espnBase + "/leagues/270559/events/100"
	competitionRef = eventRef + "/competitions/100"
	homeRef        = competitionRef + "/competitors/10"
	awayRef        = competitionRef + "/competitors/20"
	groupRef       = espnBase + "/leagues/270559/seasons/2024/types/1/groups/5"
	standingsRef   = groupRef + "/standings/0"
)

// scenarioPages is one league season with a single match between teams 10
// (home) and 20 (away, winner 24-17), one venue and one roster of two
// players.
func scenarioPages(fullSeason bool) map[string]string {
	events := leagueEndpoint("events_url_by_dates", scenarioLeague)
	if fullSeason {
		events = events.withQuery("dates", "20240920-20240927")
	}

	pages := map[string]string{
		leagueEndpoint("league_info", scenarioLeague).String(): `{
			"id": "270559", "name": "United Rugby Championship", "abbreviation": "URC",
			"slug": "270559", "season": {"year": 2024}
		}`,
		seasonEndpoint("league_calendar_by_season", scenarioLeague, 2024).String(): `{
			"eventDate": {"dates": ["2024-08-30T07:00Z", "2024-09-20T07:00Z", "2024-09-27T07:00Z"]}
		}`,
		seasonEndpoint("league_season_info", scenarioLeague, 2024).String(): `{
			"year": 2024, "type": {"hasGroups": true, "hasStandings": true}
		}`,
		probeKey("20240830"): `{"count": 1, "pageCount": 1, "items": [{"$ref": "` + espnBase + `/leagues/270559/events/90"}]}`,
		probeKey("20240920"): `{"count": 1, "pageCount": 1, "items": [{"$ref": "` + eventRef + `"}]}`,
		probeKey("20240927"): `{"count": 1, "pageCount": 1, "items": [{"$ref": "` + eventRef + `"}]}`,
		espnBase + "/leagues/270559/events/90": `{
			"id": "90", "date": "2024-08-30T07:00Z", "timeValid": true,
			"season": {"$ref": "` + espnBase + `/leagues/270559/seasons/2023"}
		}`,
		events.String(): `{"count": 1, "pageCount": 1, "items": [{"$ref": "` + eventRef + `"}]}`,
		eventRef: `{
			"$ref": "` + eventRef + `",
			"id": "100", "date": "2024-09-20T19:35Z", "name": "Leinster at Munster", "shortName": "LEI @ MUN",
			"timeValid": true,
			"season": {"$ref": "` + espnBase + `/leagues/270559/seasons/2024"},
			"competitions": [{
				"venue": {"id": "77", "fullName": "Thomond Park", "grass": true, "indoor": false,
					"address": {"city": "Limerick"}},
				"status": {"$ref": "` + competitionRef + `/status"},
				"competitors": [
					{"id": "10", "homeAway": "home", "winner": false,
						"score": {"$ref": "` + homeRef + `/score"},
						"linescores": {"$ref": "` + homeRef + `/linescores"},
						"statistics": {"$ref": "` + homeRef + `/statistics"}},
					{"id": "20", "homeAway": "away", "winner": true,
						"score": {"$ref": "` + awayRef + `/score"},
						"linescores": {"$ref": "` + awayRef + `/linescores"},
						"statistics": {"$ref": "` + awayRef + `/statistics"},
						"roster": {"$ref": "` + awayRef + `/roster"}}
				]
			}]
		}`,
		homeRef + "/score":            `{"value": 17}`,
		awayRef + "/score":            `{"value": 24}`,
		competitionRef + "/status":    `{"clock": 4800}`,
		homeRef + "/linescores":       `{"items": [{"period": 1, "value": 10}, {"period": 2, "value": 7}]}`,
		awayRef + "/linescores":       `{"items": [{"period": 1, "value": 14}, {"period": 2, "value": 10}, {"period": 60, "value": 17}]}`,
		homeRef + "/statistics":       `{"splits": {"categories": [{"stats": [{"name": "tackles", "value": 120}, {"name": "carries", "value": null}]}]}}`,
		awayRef + "/statistics":       `{"splits": {"categories": []}}`,
		seasonEndpoint("group_urls", scenarioLeague, 2024).String(): `{"count": 1, "pageCount": 1, "items": [{"$ref": "` + groupRef + `"}]}`,
		groupRef:                      `{"standings": {"$ref": "` + groupRef + `/standings"}}`,
		groupRef + "/standings":       `{"count": 1, "pageCount": 1, "items": [{"$ref": "` + standingsRef + `"}]}`,
		standingsRef: `{
			"$ref": "` + standingsRef + `",
			"standings": [
				{"team": {"$ref": "` + espnBase + `/leagues/270559/seasons/2024/teams/10"},
					"records": [{"stats": [{"name": "wins", "value": 0}, {"name": "points", "value": 1}]}]},
				{"team": {"$ref": "` + espnBase + `/leagues/270559/seasons/2024/teams/20"},
					"records": [{"stats": [{"name": "wins", "value": 1}, {"name": "points", "value": 4}]}]}
			]
		}`,
		espnBase + "/leagues/270559/seasons/2024/teams/10": `{
			"id": "10", "name": "Munster", "abbreviation": "MUN", "color": "cc0000",
			"logos": [{"href": "https://a.espn.test/munster.png"}]
		}`,
		espnBase + "/leagues/270559/seasons/2024/teams/20": `{
			"id": "20", "name": "Leinster", "abbreviation": "LEI", "color": "0033a0", "logos": []
		}`,
		awayRef + "/roster": `{
			"$ref": "` + awayRef + `/roster",
			"entries": [
				{"playerId": "1001", "jersey": "9", "position": {"$ref": "` + espnBase + `/positions/5"},
					"athlete": {"$ref": "` + espnBase + `/athletes/1001"},
					"statistics": {"$ref": "` + awayRef + `/roster/1001/statistics/0"}},
				{"playerId": "1002", "jersey": "16", "position": {"$ref": "` + espnBase + `/positions/20"},
					"athlete": {"$ref": "` + espnBase + `/athletes/1002"}}
			]
		}`,
		espnBase + "/athletes/1001": `{
			"firstName": "Jamison", "lastName": "Gibson-Park", "weight": 176.88, "height": 68.9,
			"dateOfBirth": "1992-02-23T08:00Z", "birthPlace": {"country": "New Zealand"},
			"position": {"name": "Scrum-half"}
		}`,
		espnBase + "/athletes/1002": `{"firstName": "Dan", "lastName": "Sheehan"}`,
		awayRef + "/roster/1001/statistics/0": `{"splits": {"categories": [{"stats": [{"name": "tackles", "value": 8}]}]}}`,
	}
	return pages
}

func probeKey(date string) string {
	return leagueEndpoint("events_url_by_dates", scenarioLeague).withQuery("dates", date).String()
}
