package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoster(t *testing.T) *Roster {
	t.Helper()
	roster, err := NewRoster(squadPlayers, squadFines)
	require.NoError(t, err)
	return roster
}

func slideKinds(slides []SlideDescriptor) []string {
	kinds := make([]string, len(slides))
	for i, s := range slides {
		kinds[i] = s.Kind
	}
	return kinds
}

func indexOf(kinds []string, kind string) int {
	for i, k := range kinds {
		if k == kind {
			return i
		}
	}
	return -1
}

// TestBuildSlidesOrderInvariants tests deck ordering for every squad member
func TestBuildSlidesOrderInvariants(t *testing.T) {
	roster := testRoster(t)
	squad := computeSquadStatistics(roster.Players())

	for _, p := range roster.Players() {
		t.Run(p.Name, func(t *testing.T) {
			slides := buildSlides(p, squad, roster)
			kinds := slideKinds(slides)

			assert.Equal(t, SlideIntro, kinds[0], "intro must open the deck")
			assert.Equal(t, SlideSummary, kinds[len(kinds)-1], "summary must close the deck")
			assert.Less(t, indexOf(kinds, SlideGuessScorer), indexOf(kinds, SlideGoals),
				"trivia comes before the goals breakdown")

			// The shared skeleton appears for everyone, in order.
			prev := -1
			for _, kind := range baseSequence {
				i := indexOf(kinds, kind)
				assert.Greater(t, i, prev, "base slide %s out of order", kind)
				prev = i
			}
		})
	}
}

// TestBuildSlidesSpecials tests which players get which one-off slides
func TestBuildSlidesSpecials(t *testing.T) {
	roster := testRoster(t)
	squad := computeSquadStatistics(roster.Players())

	tests := []struct {
		player   string
		expected []string
	}{
		{"Phill Fordham", []string{SlideSkort, SlideHamstring}},
		{"Shane Looker", []string{SlideInbetweeners}},
		{"Richard Swann", []string{SlidePostmanPat}},
		{"Scott Barnardo", []string{SlideMountainMan}},
		{"Martin Richards", []string{SlideNickname}},
		{"Mick Dicken", []string{SlideHandsome}},
		{"Ben Andrews", []string{SlideHandsomeRunnerUp}},
		{"Tom Blewett", []string{SlideHairline}},
		{"Martyn Head", []string{SlideHairline}},
		{"Max Chippett", []string{SlideHairline}},
		{"Chris Ryan", []string{SlideHairline}},
		{"Ethan Allen", []string{SlideFlappyHand}},
		{"Ben Roberts", []string{SlideBlobby}},
		{"Alex Roberts", []string{SlideHamstring}},
		{"Charlie Luke", nil},
		{"Oliver Clarke", nil},
	}

	for _, tt := range tests {
		t.Run(tt.player, func(t *testing.T) {
			p, ok := roster.ByName(tt.player)
			require.True(t, ok)

			kinds := slideKinds(buildSlides(p, squad, roster))
			var specials []string
			for _, kind := range kinds {
				if indexOf(baseSequence, kind) == -1 {
					specials = append(specials, kind)
				}
			}
			assert.Equal(t, tt.expected, specials)
		})
	}
}

// TestBuildSlidesSpecialAnchors tests insertion points for one-off slides
func TestBuildSlidesSpecialAnchors(t *testing.T) {
	roster := testRoster(t)
	squad := computeSquadStatistics(roster.Players())

	p, ok := roster.ByName("Phill Fordham")
	require.True(t, ok)
	kinds := slideKinds(buildSlides(p, squad, roster))

	assert.Equal(t, indexOf(kinds, SlideIntro)+1, indexOf(kinds, SlideSkort),
		"skort slide follows the intro directly")
	assert.Equal(t, indexOf(kinds, SlideCards)+1, indexOf(kinds, SlideHamstring),
		"hamstring slide follows the cards slide")

	p, ok = roster.ByName("Shane Looker")
	require.True(t, ok)
	kinds = slideKinds(buildSlides(p, squad, roster))
	assert.Equal(t, indexOf(kinds, SlideGoals)+1, indexOf(kinds, SlideInbetweeners))
}

// TestBuildSlidesPayloads tests resolved payload values
func TestBuildSlidesPayloads(t *testing.T) {
	roster := testRoster(t)
	squad := computeSquadStatistics(roster.Players())

	p, ok := roster.ByName("James Dudley")
	require.True(t, ok)
	slides := buildSlides(p, squad, roster)
	kinds := slideKinds(slides)

	matches := slides[indexOf(kinds, SlideMatches)].Matches
	require.NotNil(t, matches)
	assert.Equal(t, 8, matches.Apps)
	assert.Equal(t, 10, matches.MaxApps)
	assert.InDelta(t, 80.0, matches.PctOfMax, 0.001)
	assert.True(t, matches.RegularStarter)

	goals := slides[indexOf(kinds, SlideGoals)].Goals
	require.NotNil(t, goals)
	assert.Equal(t, 6, goals.Goals)
	assert.Equal(t, 4, goals.OpenPlay)
	assert.Equal(t, 1, goals.PenaltyCorners)
	assert.Equal(t, 1, goals.PenaltyFlicks)
	assert.Equal(t, 7, goals.Involvement)
	assert.True(t, goals.IsTopScorer)
	assert.Equal(t, 0, goals.MarginToLeader)
	assert.Equal(t, []string{"James Dudley", "Richard Swann"}, goals.Leaders)

	team := slides[indexOf(kinds, SlideTeamStats)].TeamStats
	require.NotNil(t, team)
	assert.True(t, team.TruroQuote, "beating Truro earns the quote")
	assert.Equal(t, squad.Record, team.Record)

	trivia := slides[indexOf(kinds, SlideGuessScorer)].Trivia
	require.NotNil(t, trivia)
	assert.Equal(t, []string{"Ben Roberts", "James Dudley", "Richard Swann", "Scott Barnardo"}, trivia.Candidates)
	assert.Equal(t, 2, trivia.TargetCount)
}

// TestBuildSlidesZeroGoalPlayer tests payloads for a non-scorer
func TestBuildSlidesZeroGoalPlayer(t *testing.T) {
	roster := testRoster(t)
	squad := computeSquadStatistics(roster.Players())

	p, ok := roster.ByName("Alex Roberts")
	require.True(t, ok)
	slides := buildSlides(p, squad, roster)
	kinds := slideKinds(slides)

	goals := slides[indexOf(kinds, SlideGoals)].Goals
	require.NotNil(t, goals)
	assert.Equal(t, 0, goals.Goals)
	assert.False(t, goals.IsTopScorer)
	assert.Equal(t, 6, goals.MarginToLeader)

	matches := slides[indexOf(kinds, SlideMatches)].Matches
	require.NotNil(t, matches)
	assert.False(t, matches.RegularStarter)

	fines := slides[indexOf(kinds, SlideFines)].Fines
	require.NotNil(t, fines)
	assert.True(t, fines.Owing)
	assert.Equal(t, "£11.00", fines.Debt)
}

// TestBuildSlidesMaxAppsZero tests the division guard on an empty squad line
func TestBuildSlidesMaxAppsZero(t *testing.T) {
	roster, err := NewRoster([]PlayerRecord{{SquadNumber: 1, Name: "Bench Warmer"}}, nil)
	require.NoError(t, err)
	squad := computeSquadStatistics(roster.Players())
	require.Equal(t, 0, squad.MaxApps)

	p, _ := roster.ByName("Bench Warmer")
	slides := buildSlides(p, squad, roster)
	kinds := slideKinds(slides)

	matches := slides[indexOf(kinds, SlideMatches)].Matches
	require.NotNil(t, matches)
	assert.Zero(t, matches.PctOfMax, "no appearances anywhere must not divide by zero")
}

// TestBuildSummaryCard tests the shareable end card
func TestBuildSummaryCard(t *testing.T) {
	roster := testRoster(t)
	squad := computeSquadStatistics(roster.Players())

	tests := []struct {
		player     string
		statLabel  string
		statValue  int
		totalCards int
		awardTitle string
		filename   string
	}{
		{"James Dudley", "goals", 6, 2, "", "Duchy_HalfSeason_James_Dudley.png"},
		{"Ethan Allen", "conceded", 31, 0, "FLAPPY HANDS", "Duchy_HalfSeason_Ethan_Allen.png"},
		{"Kevin Welsh", "conceded", 2, 0, "", "Duchy_HalfSeason_Kevin_Welsh.png"},
		{"Max Chippett", "goals", 0, 2, "HAIRLINE FRACTURE", "Duchy_HalfSeason_Max_Chippett.png"},
		{"Phill Fordham", "goals", 0, 0, "NICE SKORT", "Duchy_HalfSeason_Phill_Fordham.png"},
		{"Mick Dicken", "goals", 0, 0, "MOST HANDSOME", "Duchy_HalfSeason_Mick_Dicken.png"},
	}

	for _, tt := range tests {
		t.Run(tt.player, func(t *testing.T) {
			p, ok := roster.ByName(tt.player)
			require.True(t, ok)

			card := buildSummary(p, squad)
			assert.Equal(t, tt.statLabel, card.StatLabel)
			assert.Equal(t, tt.statValue, card.StatValue)
			assert.Equal(t, tt.totalCards, card.TotalCards)
			assert.Equal(t, tt.filename, card.ExportFilename)

			if tt.awardTitle == "" {
				assert.Nil(t, card.Award)
			} else {
				require.NotNil(t, card.Award)
				assert.Equal(t, tt.awardTitle, card.Award.Title)
			}
		})
	}
}

// TestSpecialSlidesDisjointAnchoredSets tests that no player hits two
// specials at the same anchor, which would make insertion order matter
// beyond the table.
func TestSpecialSlidesDisjointAnchoredSets(t *testing.T) {
	seen := map[string]map[string]bool{}
	for _, sp := range specialSlides {
		for _, name := range sp.names {
			if seen[sp.after] == nil {
				seen[sp.after] = map[string]bool{}
			}
			assert.False(t, seen[sp.after][name],
				"%s appears twice at anchor %s", name, sp.after)
			seen[sp.after][name] = true
		}
	}
}
