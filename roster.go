package main

// squadPlayers is the half-season dataset for the Duchy men's 1st XI,
// in squad declaration order. Order matters: tie-breaks on every
// squad-wide maximum go to the earliest player in this slice.
var squadPlayers = []PlayerRecord{
	{
		SquadNumber: 3, Name: "Ben Andrews",
		Stats: map[StatKey]int{StatStarts: 9, StatApps: 9, StatCardPoints: 2, StatGreenCards: 1},
		Matches: []MatchEntry{
			{"UoE 6s (h) (Lost 4-1)", "Played, green card"},
			{"Bod 1s (a) (Lost 2-1)", "played"},
			{"Ash. 2s (a) (Lost 4-1)", "played"},
			{"Bude 1s (h) (Draw 2-2)", "played"},
			{"Torbay 1s (h) (Lost 3-2)", "played"},
			{"N. Dev. 1s (a) (Lost 5-0)", "played"},
			{"Uni 1s (a) (Lost 7-2)", "played"},
			{"Truro 2s (h) (Won 4-3)", "played"},
			{"Ocean 1s (a) (Lost 3-2)", "played"},
		},
	},
	{
		SquadNumber: 6, Name: "Max Chippett",
		Stats: map[StatKey]int{StatStarts: 8, StatSubApps: 1, StatApps: 9, StatAssists: 1, StatCardPoints: 7, StatGreenCards: 1, StatYellowCards: 1},
		Matches: []MatchEntry{
			{"UoE 6s (h) (Lost 4-1)", "played"},
			{"Bod 1s (a) (Lost 2-1)", "played"},
			{"Ash. 2s (a) (Lost 4-1)", "played"},
			{"Bude 1s (h) (Draw 2-2)", "played, green card, yellow card"},
			{"Torbay 1s (h) (Lost 3-2)", "played"},
			{"N. Dev. 1s (a) (Lost 5-0)", "played"},
			{"Lions 2s (h) (Lost 4-3)", "played"},
			{"Uni 1s (a) (Lost 7-2)", "played"},
			{"Truro 2s (h) (Won 4-3)", "played"},
		},
	},
	{
		SquadNumber: 10, Name: "Tom Blewett",
		Stats: map[StatKey]int{StatStarts: 3, StatSubApps: 2, StatApps: 5, StatGoals: 1, StatPenaltyCorners: 1, StatAssists: 3, StatManOfTheMatch: 1},
		Matches: []MatchEntry{
			{"UoE 6s (h) (Lost 4-1)", "played, man of the match"},
			{"Torbay 1s (h) (Lost 3-2)", "played"},
			{"Lions 2s (h) (Lost 4-3)", "played"},
			{"Truro 2s (h) (Won 4-3)", "played, 1 goal"},
			{"Ocean 1s (a) (Lost 3-2)", "played"},
		},
	},
	{
		SquadNumber: 11, Name: "Alex Roberts",
		Stats: map[StatKey]int{StatSubApps: 3, StatApps: 3},
		Matches: []MatchEntry{
			{"Bude 1s (h) (Draw 2-2)", "played"},
			{"Torbay 1s (h) (Lost 3-2)", "played"},
			{"Ocean 1s (a) (Lost 3-2)", "played"},
		},
	},
	{
		SquadNumber: 15, Name: "James Dudley",
		Stats: map[StatKey]int{StatStarts: 6, StatSubApps: 2, StatApps: 8, StatGoals: 6, StatOpenPlayGoals: 4, StatPenaltyCorners: 1, StatPenaltyFlicks: 1, StatAssists: 1, StatManOfTheMatch: 1, StatCardPoints: 4, StatGreenCards: 2},
		Matches: []MatchEntry{
			{"UoE 6s (h) (Lost 4-1)", "played, 1 goal, green card"},
			{"Bod 1s (a) (Lost 2-1)", "played"},
			{"Ash. 2s (a) (Lost 4-1)", "played"},
			{"Torbay 1s (h) (Lost 3-2)", "played, 1 goal"},
			{"N. Dev. 1s (a) (Lost 5-0)", "played, green card"},
			{"Lions 2s (h) (Lost 4-3)", "played, 1 goal"},
			{"Truro 2s (h) (Won 4-3)", "played, 1 goal"},
			{"Ocean 1s (a) (Lost 3-2)", "played, 2 goals, man of the match"},
		},
	},
	{
		SquadNumber: 16, Name: "Joe Bacon",
		Stats: map[StatKey]int{StatStarts: 2, StatSubApps: 1, StatApps: 3, StatAssists: 1},
		Matches: []MatchEntry{
			{"UoE 6s (h) (Lost 4-1)", "played"},
			{"Ash. 2s (a) (Lost 4-1)", "played"},
			{"Bude 1s (h) (Draw 2-2)", "played"},
		},
	},
	{
		SquadNumber: 19, Name: "Mick Dicken",
		Stats: map[StatKey]int{StatStarts: 6, StatApps: 6},
		Matches: []MatchEntry{
			{"UoE 6s (h) (Lost 4-1)", "played"},
			{"Bod 1s (a) (Lost 2-1)", "played"},
			{"N. Dev. 1s (a) (Lost 5-0)", "played"},
			{"Uni 1s (a) (Lost 7-2)", "played"},
			{"Truro 2s (h) (Won 4-3)", "played"},
		},
	},
	{
		SquadNumber: 24, Name: "Phill Fordham",
		Stats: map[StatKey]int{StatStarts: 5, StatSubApps: 1, StatApps: 6, StatAssists: 1, StatManOfTheMatch: 1},
		Matches: []MatchEntry{
			{"Ash. 2s (a) (Lost 4-1)", "played"},
			{"Bude 1s (h) (Draw 2-2)", "played"},
			{"N. Dev. 1s (a) (Lost 5-0)", "played"},
			{"Uni 1s (a) (Lost 7-2)", "played, man of the match"},
			{"Truro 2s (h) (Won 4-3)", "played"},
			{"Ocean 1s (a) (Lost 3-2)", "played"},
		},
	},
	{
		SquadNumber: 36, Name: "Richard Swann",
		Stats: map[StatKey]int{StatStarts: 8, StatApps: 8, StatGoals: 6, StatOpenPlayGoals: 4, StatPenaltyCorners: 2, StatAssists: 2, StatManOfTheMatch: 1, StatCardPoints: 2, StatGreenCards: 1},
		Matches: []MatchEntry{
			{"UoE 6s (h) (Lost 4-1)", "played"},
			{"Bod 1s (a) (Lost 2-1)", "played, 1 goal, man of the match"},
			{"Ash. 2s (a) (Lost 4-1)", "played, 1 goal, green card"},
			{"Bude 1s (h) (Draw 2-2)", "played, 1 goal"},
			{"Torbay 1s (h) (Lost 3-2)", "played"},
			{"Lions 2s (h) (Lost 4-3)", "played, 1 goal"},
			{"Truro 2s (h) (Won 4-3)", "played, 2 goals"},
			{"Ocean 1s (a) (Lost 3-2)", "played"},
		},
	},
	{
		SquadNumber: 44, Name: "Chris Ryan",
		Stats: map[StatKey]int{StatStarts: 5, StatApps: 5},
		Matches: []MatchEntry{
			{"UoE 6s (h) (Lost 4-1)", "played"},
			{"N. Dev. 1s (a) (Lost 5-0)", "played"},
			{"Lions 2s (h) (Lost 4-3)", "played"},
			{"Uni 1s (a) (Lost 7-2)", "played"},
			{"Truro 2s (h) (Won 4-3)", "played"},
		},
	},
	{
		SquadNumber: 47, Name: "Jason Farrar",
		Stats: map[StatKey]int{StatStarts: 3, StatSubApps: 3, StatApps: 6, StatGoals: 1, StatPenaltyFlicks: 1, StatManOfTheMatch: 2},
		Matches: []MatchEntry{
			{"Bod 1s (a) (Lost 2-1)", "played"},
			{"Ash. 2s (a) (Lost 4-1)", "played"},
			{"Bude 1s (h) (Draw 2-2)", "played, 1 goal"},
			{"Torbay 1s (h) (Lost 3-2)", "played, man of the match"},
			{"Lions 2s (h) (Lost 4-3)", "played, man of the match"},
			{"Uni 1s (a) (Lost 7-2)", "played"},
		},
	},
	{
		SquadNumber: 57, Name: "Martin Richards",
		Stats: map[StatKey]int{StatStarts: 2, StatSubApps: 4, StatApps: 6, StatAssists: 1},
		Matches: []MatchEntry{
			{"UoE 6s (h) (Lost 4-1)", "played"},
			{"Ash. 2s (a) (Lost 4-1)", "played"},
			{"Torbay 1s (h) (Lost 3-2)", "played"},
			{"N. Dev. 1s (a) (Lost 5-0)", "played"},
			{"Lions 2s (h) (Lost 4-3)", "played"},
			{"Uni 1s (a) (Lost 7-2)", "played"},
		},
	},
	{
		SquadNumber: 63, Name: "Martyn Head",
		Stats: map[StatKey]int{StatStarts: 6, StatApps: 6, StatAssists: 3},
		Matches: []MatchEntry{
			{"UoE 6s (h) (Lost 4-1)", "played"},
			{"Bod 1s (a) (Lost 2-1)", "played"},
			{"Ash. 2s (a) (Lost 4-1)", "played"},
			{"Bude 1s (h) (Draw 2-2)", "played"},
			{"N. Dev. 1s (a) (Lost 5-0)", "played"},
			{"Uni 1s (a) (Lost 7-2)", "played"},
		},
	},
	{
		SquadNumber: 66, Name: "Oliver Clarke",
		Stats: map[StatKey]int{StatStarts: 5, StatSubApps: 4, StatApps: 9},
		Matches: []MatchEntry{
			{"UoE 6s (h) (Lost 4-1)", "played"},
			{"Bod 1s (a) (Lost 2-1)", "played"},
			{"Ash. 2s (a) (Lost 4-1)", "played"},
			{"Torbay 1s (h) (Lost 3-2)", "played"},
			{"N. Dev. 1s (a) (Lost 5-0)", "played"},
			{"Lions 2s (h) (Lost 4-3)", "played"},
			{"Uni 1s (a) (Lost 7-2)", "played"},
			{"Truro 2s (h) (Won 4-3)", "played"},
			{"Ocean 1s (a) (Lost 3-2)", "played"},
		},
	},
	{
		SquadNumber: 67, Name: "Ben Roberts",
		Stats: map[StatKey]int{StatStarts: 6, StatSubApps: 4, StatApps: 10, StatGoals: 4, StatOpenPlayGoals: 4, StatAssists: 2},
		Matches: []MatchEntry{
			{"UoE 6s (h) (Lost 4-1)", "played"},
			{"Bod 1s (a) (Lost 2-1)", "played"},
			{"Ash. 2s (a) (Lost 4-1)", "played"},
			{"Bude 1s (h) (Draw 2-2)", "played"},
			{"Torbay 1s (h) (Lost 3-2)", "played, 1 goal"},
			{"N. Dev. 1s (a) (Lost 5-0)", "played"},
			{"Lions 2s (h) (Lost 4-3)", "played, 1 goal"},
			{"Uni 1s (a) (Lost 7-2)", "played, 2 goals"},
			{"Truro 2s (h) (Won 4-3)", "played"},
			{"Ocean 1s (a) (Lost 3-2)", "played"},
		},
	},
	{
		SquadNumber: 68, Name: "Scott Barnardo",
		Stats: map[StatKey]int{StatStarts: 10, StatApps: 10, StatManOfTheMatch: 1},
		Matches: []MatchEntry{
			{"UoE 6s (h) (Lost 4-1)", "played"},
			{"Bod 1s (a) (Lost 2-1)", "played"},
			{"Ash. 2s (a) (Lost 4-1)", "played"},
			{"Bude 1s (h) (Draw 2-2)", "played"},
			{"Torbay 1s (h) (Lost 3-2)", "played"},
			{"N. Dev. 1s (a) (Lost 5-0)", "played"},
			{"Lions 2s (h) (Lost 4-3)", "played"},
			{"Uni 1s (a) (Lost 7-2)", "played"},
			{"Truro 2s (h) (Won 4-3)", "played, man of the match"},
			{"Ocean 1s (a) (Lost 3-2)", "played"},
		},
	},
	{
		SquadNumber: 82, Name: "Stephen Mawdsley",
		Stats: map[StatKey]int{StatSubApps: 1, StatApps: 1},
		Matches: []MatchEntry{
			{"Bod 1s (a) (Lost 2-1)", "played"},
		},
	},
	{
		SquadNumber: 84, Name: "Kevin Welsh",
		Stats: map[StatKey]int{StatStarts: 1, StatApps: 1, StatConceded: 2},
		Matches: []MatchEntry{
			{"Bod 1s (a) (Lost 2-1)", "played, GK"},
		},
	},
	{
		SquadNumber: 87, Name: "Shane Looker",
		Stats: map[StatKey]int{StatStarts: 6, StatSubApps: 1, StatApps: 7},
		Matches: []MatchEntry{
			{"Ash. 2s (a) (Lost 4-1)", "played"},
			{"Bude 1s (h) (Draw 2-2)", "played"},
			{"Torbay 1s (h) (Lost 3-2)", "played"},
			{"Lions 2s (h) (Lost 4-3)", "played"},
			{"Uni 1s (a) (Lost 7-2)", "played"},
			{"Truro 2s (h) (Won 4-3)", "played"},
			{"Ocean 1s (a) (Lost 3-2)", "played"},
		},
	},
	{
		SquadNumber: 101, Name: "Simon Stevenson",
		Stats: map[StatKey]int{StatStarts: 1, StatApps: 1, StatConceded: 4},
		Matches: []MatchEntry{
			{"UoE 6s (h) (Lost 4-1)", "played, GK"},
		},
	},
	{
		SquadNumber: 110, Name: "Ethan Allen",
		Stats: map[StatKey]int{StatStarts: 8, StatApps: 8, StatConceded: 31, StatManOfTheMatch: 2},
		Matches: []MatchEntry{
			{"Ash. 2s (a) (Lost 4-1)", "played, GK"},
			{"Bude 1s (h) (Draw 2-2)", "played, GK, man of the match"},
			{"Torbay 1s (h) (Lost 3-2)", "played, GK"},
			{"N. Dev. 1s (a) (Lost 5-0)", "played, GK, man of the match"},
			{"Lions 2s (h) (Lost 4-3)", "played, GK"},
			{"Uni 1s (a) (Lost 7-2)", "played, GK"},
			{"Truro 2s (h) (Won 4-3)", "played, GK"},
			{"Ocean 1s (a) (Lost 3-2)", "played, GK"},
		},
	},
	{
		SquadNumber: 116, Name: "Charlie Luke",
		Stats: map[StatKey]int{StatStarts: 10, StatApps: 10, StatAssists: 3, StatManOfTheMatch: 1},
		Matches: []MatchEntry{
			{"UoE 6s (h) (Lost 4-1)", "played"},
			{"Bod 1s (a) (Lost 2-1)", "played"},
			{"Ash. 2s (a) (Lost 4-1)", "played, man of the match"},
			{"Bude 1s (h) (Draw 2-2)", "played"},
			{"Torbay 1s (h) (Lost 3-2)", "played"},
			{"N. Dev. 1s (a) (Lost 5-0)", "played"},
			{"Lions 2s (h) (Lost 4-3)", "played"},
			{"Uni 1s (a) (Lost 7-2)", "played"},
			{"Truro 2s (h) (Won 4-3)", "played"},
			{"Ocean 1s (a) (Lost 3-2)", "played"},
		},
	},
}

// squadFines is the outstanding fines ledger at the half-season cutoff.
// A player missing from the map is paid up.
var squadFines = map[string]string{
	"Charlie Luke":  "£16.50",
	"Chris Ryan":    "£15.00",
	"Ben Andrews":   "£13.00",
	"Alex Roberts":  "£11.00",
	"Martyn Head":   "£10.50",
	"Oliver Clarke": "£7.00",
	"Mick Dicken":   "£4.50",
	"Max Chippett":  "£4.00",
	"Ben Roberts":   "£4.00",
	"Shane Looker":  "£3.00",
}
