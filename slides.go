package main

import (
	"strings"
)

// Slide kinds. The base deck is the same for everyone; the rest are
// one-off slides keyed to particular players.
const (
	SlideIntro       = "intro"
	SlideMatches     = "matches"
	SlideTeamStats   = "team_stats"
	SlideGuessScorer = "guess_scorer"
	SlideGoals       = "goals"
	SlideMoM         = "mom"
	SlideCards       = "cards"
	SlideTrainGap    = "train_gap"
	SlideFines       = "fines"
	SlideSummary     = "summary"

	SlideSkort            = "skort"
	SlideInbetweeners     = "inbetweeners"
	SlidePostmanPat       = "postman_pat"
	SlideMountainMan      = "mountain_man"
	SlideNickname         = "nickname"
	SlideHandsome         = "handsome"
	SlideHandsomeRunnerUp = "handsome_2nd"
	SlideHairline         = "hairline"
	SlideFlappyHand       = "flappy_hand"
	SlideBlobby           = "blobby"
	SlideHamstring        = "hamstring"
)

// baseSequence is the deck skeleton, in viewing order.
var baseSequence = []string{
	SlideIntro,
	SlideMatches,
	SlideTeamStats,
	SlideGuessScorer,
	SlideGoals,
	SlideMoM,
	SlideCards,
	SlideTrainGap,
	SlideFines,
	SlideSummary,
}

// triviaCandidates are the four names offered in the guess-the-scorer
// game, alphabetical. Fixed regardless of who is viewing.
var triviaCandidates = []string{"Ben Roberts", "James Dudley", "Richard Swann", "Scott Barnardo"}

// trainGapBelievers filed the infamous "leaves on the line" excuse.
var trainGapBelievers = map[string]bool{
	"Martin Richards": true,
	"Shane Looker":    true,
	"Mick Dicken":     true,
	"Joe Bacon":       true,
}

// specialSlide is one personalized slide: shown only to the named
// players, inserted directly after its anchor kind. Entries sharing an
// anchor keep their order here.
type specialSlide struct {
	kind    string
	after   string
	names   []string
	payload SpecialPayload
}

var specialSlides = []specialSlide{
	{SlideSkort, SlideIntro, []string{"Phill Fordham"}, SpecialPayload{"FASHION ALERT", "NICE SKORT", "👗"}},
	{SlideInbetweeners, SlideGoals, []string{"Shane Looker"}, SpecialPayload{"CELEBRITY LOOKALIKE", "JAY CARTWRIGHT", "🚌"}},
	{SlidePostmanPat, SlideCards, []string{"Richard Swann"}, SpecialPayload{"JOB TITLE", "POSTMAN PAT", "📬"}},
	{SlideMountainMan, SlideCards, []string{"Scott Barnardo"}, SpecialPayload{"LIFESTYLE", "MOUNTAIN MAN", "🏔️"}},
	{SlideNickname, SlideCards, []string{"Martin Richards"}, SpecialPayload{"NICKNAME ACQUIRED", "PORNSTAR", "👨🏻"}},
	{SlideHandsome, SlideCards, []string{"Mick Dicken"}, SpecialPayload{"SQUAD RANKING", "MOST HANDSOME", "🤵"}},
	{SlideHandsomeRunnerUp, SlideCards, []string{"Ben Andrews"}, SpecialPayload{"SQUAD RANKING", "HANDSOME RUNNER UP", "🥈"}},
	{SlideHairline, SlideCards, []string{"Tom Blewett", "Martyn Head", "Max Chippett", "Chris Ryan"}, SpecialPayload{"MEDICAL ALERT", "HAIRLINE FRACTURE", "👨‍🦲"}},
	{SlideFlappyHand, SlideCards, []string{"Ethan Allen"}, SpecialPayload{"TECHNICAL ANALYSIS", "FLAPPY HANDS", "🧤"}},
	{SlideBlobby, SlideCards, []string{"Ben Roberts"}, SpecialPayload{"NICKNAME ACQUIRED", "MR BLOBBY", "🐬"}},
	{SlideHamstring, SlideCards, []string{"Phill Fordham", "Alex Roberts"}, SpecialPayload{"MEDICAL ALERT", "DEVIL'S HAMSTRING", "🔥"}},
}

// SlideDescriptor is one fully resolved slide. Kind selects which
// payload pointer is set; the client does no stats arithmetic of its
// own.
type SlideDescriptor struct {
	Kind      string            `json:"kind"`
	Intro     *IntroPayload     `json:"intro,omitempty"`
	Matches   *MatchesPayload   `json:"matches,omitempty"`
	TeamStats *TeamStatsPayload `json:"team_stats,omitempty"`
	Trivia    *TriviaPayload    `json:"trivia,omitempty"`
	Goals     *GoalsPayload     `json:"goals,omitempty"`
	MoM       *MoMPayload       `json:"mom,omitempty"`
	Cards     *CardsPayload     `json:"cards,omitempty"`
	TrainGap  *TrainGapPayload  `json:"train_gap,omitempty"`
	Fines     *FinesPayload     `json:"fines,omitempty"`
	Summary   *SummaryPayload   `json:"summary,omitempty"`
	Special   *SpecialPayload   `json:"special,omitempty"`
}

type IntroPayload struct {
	SquadNumber int    `json:"squad_number"`
	Name        string `json:"name"`
}

type MatchesPayload struct {
	Apps           int     `json:"apps"`
	MaxApps        int     `json:"max_apps"`
	PctOfMax       float64 `json:"pct_of_max"`
	RegularStarter bool    `json:"regular_starter"`
}

type TeamStatsPayload struct {
	Record     TeamRecord  `json:"record"`
	FormGuide  []Outcome   `json:"form_guide"`
	BiggestWin *BiggestWin `json:"biggest_win,omitempty"`
	TruroQuote bool        `json:"truro_quote"`
}

type TriviaPayload struct {
	Candidates  []string `json:"candidates"`
	TargetCount int      `json:"target_count"`
}

type GoalsPayload struct {
	Goals          int      `json:"goals"`
	OpenPlay       int      `json:"open_play"`
	PenaltyCorners int      `json:"penalty_corners"`
	PenaltyFlicks  int      `json:"penalty_flicks"`
	Assists        int      `json:"assists"`
	Involvement    int      `json:"involvement"`
	IsTopScorer    bool     `json:"is_top_scorer"`
	MaxGoals       int      `json:"max_goals"`
	MarginToLeader int      `json:"margin_to_leader"`
	Leaders        []string `json:"leaders"`
}

type MoMPayload struct {
	Awards  int `json:"awards"`
	Apps    int `json:"apps"`
	MaxApps int `json:"max_apps"`
}

type CardsPayload struct {
	Green        int    `json:"green"`
	Yellow       int    `json:"yellow"`
	CardPoints   int    `json:"card_points"`
	BadBoy       string `json:"bad_boy"`
	BadBoyPoints int    `json:"bad_boy_points"`
	IsBadBoy     bool   `json:"is_bad_boy"`
}

type TrainGapPayload struct {
	Believer bool `json:"believer"`
}

type FinesPayload struct {
	Debt  string `json:"debt,omitempty"`
	Owing bool   `json:"owing"`
}

type SummaryPayload struct {
	SquadNumber    int           `json:"squad_number"`
	Name           string        `json:"name"`
	Apps           int           `json:"apps"`
	MaxApps        int           `json:"max_apps"`
	StatLabel      string        `json:"stat_label"`
	StatValue      int           `json:"stat_value"`
	MoMAwards      int           `json:"mom_awards"`
	TotalCards     int           `json:"total_cards"`
	Award          *SpecialAward `json:"award,omitempty"`
	ExportFilename string        `json:"export_filename"`
}

type SpecialPayload struct {
	Label string `json:"label"`
	Title string `json:"title"`
	Emoji string `json:"emoji"`
}

// buildSlides assembles the personalized deck for one player: the base
// sequence with any special slides spliced in after their anchors.
// Intro is always first and summary always last.
func buildSlides(p PlayerRecord, squad SquadStatistics, roster *Roster) []SlideDescriptor {
	slides := make([]SlideDescriptor, 0, len(baseSequence)+2)
	for _, kind := range baseSequence {
		slides = append(slides, resolveSlide(kind, p, squad, roster))
		for _, sp := range specialSlides {
			if sp.after != kind || !containsName(sp.names, p.Name) {
				continue
			}
			payload := sp.payload
			slides = append(slides, SlideDescriptor{Kind: sp.kind, Special: &payload})
		}
	}
	return slides
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func resolveSlide(kind string, p PlayerRecord, squad SquadStatistics, roster *Roster) SlideDescriptor {
	s := SlideDescriptor{Kind: kind}
	switch kind {
	case SlideIntro:
		s.Intro = &IntroPayload{SquadNumber: p.SquadNumber, Name: p.Name}

	case SlideMatches:
		apps := p.Stat(StatApps)
		var pct float64
		if squad.MaxApps > 0 {
			pct = float64(apps) / float64(squad.MaxApps) * 100
		}
		s.Matches = &MatchesPayload{
			Apps:           apps,
			MaxApps:        squad.MaxApps,
			PctOfMax:       pct,
			RegularStarter: apps >= squad.MaxApps-2,
		}

	case SlideTeamStats:
		truro := squad.BiggestWin != nil && strings.Contains(squad.BiggestWin.Opponent, "Truro")
		s.TeamStats = &TeamStatsPayload{
			Record:     squad.Record,
			FormGuide:  squad.FormGuide,
			BiggestWin: squad.BiggestWin,
			TruroQuote: truro,
		}

	case SlideGuessScorer:
		s.Trivia = &TriviaPayload{
			Candidates:  triviaCandidates,
			TargetCount: len(squad.TopScorers),
		}

	case SlideGoals:
		goals := p.Stat(StatGoals)
		s.Goals = &GoalsPayload{
			Goals:          goals,
			OpenPlay:       p.Stat(StatOpenPlayGoals),
			PenaltyCorners: p.Stat(StatPenaltyCorners),
			PenaltyFlicks:  p.Stat(StatPenaltyFlicks),
			Assists:        p.Stat(StatAssists),
			Involvement:    goals + p.Stat(StatAssists),
			IsTopScorer:    goals == squad.MaxGoals && squad.MaxGoals > 0,
			MaxGoals:       squad.MaxGoals,
			MarginToLeader: squad.MaxGoals - goals,
			Leaders:        squad.TopScorerNames(),
		}

	case SlideMoM:
		s.MoM = &MoMPayload{
			Awards:  p.Stat(StatManOfTheMatch),
			Apps:    p.Stat(StatApps),
			MaxApps: squad.MaxApps,
		}

	case SlideCards:
		s.Cards = &CardsPayload{
			Green:        p.Stat(StatGreenCards),
			Yellow:       p.Stat(StatYellowCards),
			CardPoints:   p.Stat(StatCardPoints),
			BadBoy:       squad.BadBoy.Name,
			BadBoyPoints: squad.BadBoy.Stat(StatCardPoints),
			IsBadBoy:     p.Name == squad.BadBoy.Name,
		}

	case SlideTrainGap:
		s.TrainGap = &TrainGapPayload{Believer: trainGapBelievers[p.Name]}

	case SlideFines:
		debt, owing := roster.Fine(p.Name)
		s.Fines = &FinesPayload{Debt: debt, Owing: owing}

	case SlideSummary:
		s.Summary = buildSummary(p, squad)
	}
	return s
}

// buildSummary resolves the shareable end card. Goalkeepers show goals
// conceded where outfielders show goals scored.
func buildSummary(p PlayerRecord, squad SquadStatistics) *SummaryPayload {
	label, value := "goals", p.Stat(StatGoals)
	if p.Stat(StatConceded) > 0 {
		label, value = "conceded", p.Stat(StatConceded)
	}
	return &SummaryPayload{
		SquadNumber:    p.SquadNumber,
		Name:           p.Name,
		Apps:           p.Stat(StatApps),
		MaxApps:        squad.MaxApps,
		StatLabel:      label,
		StatValue:      value,
		MoMAwards:      p.Stat(StatManOfTheMatch),
		TotalCards:     p.Stat(StatGreenCards) + p.Stat(StatYellowCards),
		Award:          summaryAward(p.Name),
		ExportFilename: exportFilename(p.Name),
	}
}

// summaryAward returns the player's one-off award, if any. When a
// player qualifies for several specials the earliest table entry wins.
func summaryAward(name string) *SpecialAward {
	for _, sp := range specialSlides {
		if containsName(sp.names, name) {
			return &SpecialAward{Label: sp.payload.Label, Title: sp.payload.Title, Emoji: sp.payload.Emoji}
		}
	}
	return nil
}
