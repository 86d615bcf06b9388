package postgres

type standingInsertModel struct {
	UID        string `db:"uid"`
	TeamESPNID int64  `db:"team_id"`
	LeagueUID  string `db:"league_uid"`
	GroupID    int64  `db:"group_id"`
}

// standingStatColumns maps the upstream standings vocabulary to columns.
// Names outside it land in extra_stats.
var standingStatColumns = map[string]string{
	"OTLosses":           "ot_losses",
	"OTWins":             "ot_wins",
	"avgPointsAgainst":   "avg_points_against",
	"avgPointsFor":       "avg_points_for",
	"differential":       "differential",
	"divisionWinPercent": "division_win_percent",
	"gamesBehind":        "games_behind",
	"gamesPlayed":        "games_played",
	"leagueWinPercent":   "league_win_percent",
	"losses":             "losses",
	"playoffSeed":        "playoff_seed",
	"pointsDifference":   "points_difference",
	"points":             "points",
	"pointsAgainst":      "points_against",
	"pointsFor":          "points_for",
	"streak":             "streak",
	"ties":               "ties",
	"winPercent":         "win_percent",
	"wins":               "wins",
	"bonusPoints":        "bonus_points",
	"gamesBye":           "games_bye",
	"bonusPointsLosing":  "bonus_points_losing",
	"rank":               "rank",
	"triesAgainst":       "tries_against",
	"bonusPointsTry":     "bonus_points_try",
	"triesDifference":    "tries_difference",
	"triesFor":           "tries_for",
	"gamesLost":          "games_lost",
	"gamesWon":           "games_won",
	"gamesDrawn":         "games_drawn",
}
