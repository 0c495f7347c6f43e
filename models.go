package main

// StatKey identifies one counter in a player's stat line. Keys missing
// from a player's stat map read as zero.
type StatKey string

const (
	StatStarts         StatKey = "starts"
	StatSubApps        StatKey = "sub_apps"
	StatApps           StatKey = "apps"
	StatGoals          StatKey = "goals"
	StatOpenPlayGoals  StatKey = "open_play_goals"
	StatPenaltyCorners StatKey = "penalty_corners"
	StatPenaltyFlicks  StatKey = "penalty_flicks"
	StatAssists        StatKey = "assists"
	StatManOfTheMatch  StatKey = "man_of_the_match"
	StatCardPoints     StatKey = "card_points"
	StatGreenCards     StatKey = "green_cards"
	StatYellowCards    StatKey = "yellow_cards"
	StatConceded       StatKey = "conceded"
)

// MatchEntry is one line of a player's match log, in chronological order.
// Description carries the fixture text ("Truro 2s (h) (Won 4-3)"), Details
// the free-form involvement notes.
type MatchEntry struct {
	Description string `json:"description"`
	Details     string `json:"details"`
}

// PlayerRecord is one squad member's half-season line.
type PlayerRecord struct {
	SquadNumber int             `json:"squad_number"`
	Name        string          `json:"name"`
	Stats       map[StatKey]int `json:"stats"`
	Matches     []MatchEntry    `json:"matches"`
}

// Stat returns the named counter, zero when absent.
func (p PlayerRecord) Stat(key StatKey) int {
	return p.Stats[key]
}

// Outcome classifies a parsed match result.
type Outcome string

const (
	OutcomeWin  Outcome = "W"
	OutcomeDraw Outcome = "D"
	OutcomeLoss Outcome = "L"
)

// MatchResult is a single parsed fixture from the team's perspective.
type MatchResult struct {
	Opponent     string  `json:"opponent"`
	Outcome      Outcome `json:"outcome"`
	GoalsFor     int     `json:"goals_for"`
	GoalsAgainst int     `json:"goals_against"`
}

// TeamRecord accumulates results across the half season.
type TeamRecord struct {
	Wins         int `json:"wins"`
	Draws        int `json:"draws"`
	Losses       int `json:"losses"`
	GoalsFor     int `json:"goals_for"`
	GoalsAgainst int `json:"goals_against"`
}

// BiggestWin is the victory with the largest winning margin.
type BiggestWin struct {
	Opponent string `json:"opponent"`
	Score    string `json:"score"`
	Margin   int    `json:"margin"`
}

// SquadStatistics is everything derived from the roster in one pass:
// squad-wide maxima, the team's results and the best win.
type SquadStatistics struct {
	MaxApps        int            `json:"max_apps"`
	MaxGoals       int            `json:"max_goals"`
	ScheduleSource string         `json:"schedule_source"`
	TopScorers     []PlayerRecord `json:"top_scorers"`
	BadBoy         PlayerRecord   `json:"bad_boy"`
	MostMoM        PlayerRecord   `json:"most_mom"`
	Record         TeamRecord     `json:"record"`
	Results        []MatchResult  `json:"results"`
	FormGuide      []Outcome      `json:"form_guide"`
	BiggestWin     *BiggestWin    `json:"biggest_win,omitempty"`
}

// TopScorerNames lists the joint top scorers in roster order.
func (s SquadStatistics) TopScorerNames() []string {
	names := make([]string, len(s.TopScorers))
	for i, p := range s.TopScorers {
		names[i] = p.Name
	}
	return names
}

// SearchResult is one hit from a roster search, ordered by relevance.
type SearchResult struct {
	SquadNumber int    `json:"squad_number"`
	Name        string `json:"name"`
	Relevance   int    `json:"relevance"`
}

// SpecialAward is the one-off award shown on a player's summary card.
type SpecialAward struct {
	Label string `json:"label"`
	Title string `json:"title"`
	Emoji string `json:"emoji"`
}

// APIError represents an API error response
type APIError struct {
	Error   string                 `json:"error"`
	Code    string                 `json:"code,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}
