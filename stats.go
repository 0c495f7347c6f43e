package main

import (
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
)

var scorePattern = regexp.MustCompile(`(\d+)-(\d+)`)

// parseMatchResult extracts opponent, outcome and scoreline from a
// fixture description like "Truro 2s (h) (Won 4-3)". The format is
// hand-typed by the stats keeper, so parsing is lenient: a missing or
// garbled score falls back to a 0-0 draw rather than failing.
func parseMatchResult(description string) MatchResult {
	opponent := description
	if i := strings.Index(description, "("); i >= 0 {
		opponent = description[:i]
	}
	opponent = strings.TrimSpace(opponent)

	result := MatchResult{Opponent: opponent, Outcome: OutcomeDraw}

	m := scorePattern.FindStringSubmatch(description)
	if m == nil {
		return result
	}
	first, _ := strconv.Atoi(m[1])
	second, _ := strconv.Atoi(m[2])

	lower := strings.ToLower(description)
	switch {
	case strings.Contains(lower, "won"):
		result.Outcome = OutcomeWin
		result.GoalsFor = max(first, second)
		result.GoalsAgainst = min(first, second)
	case strings.Contains(lower, "lost"):
		result.Outcome = OutcomeLoss
		result.GoalsFor = min(first, second)
		result.GoalsAgainst = max(first, second)
	default:
		result.GoalsFor = first
		result.GoalsAgainst = second
	}
	return result
}

// computeSquadStatistics derives every squad-wide figure from the
// roster in two passes. Pure function of its input; safe to call
// repeatedly, though the server computes it once at startup.
//
// Maxima use strictly-greater comparison, so on a tie the first player
// in roster order keeps the title. Top scorers are the exception: every
// player level on the maximum is included.
func computeSquadStatistics(players []PlayerRecord) SquadStatistics {
	stats := SquadStatistics{}
	if len(players) == 0 {
		return stats
	}

	stats.BadBoy = players[0]
	stats.MostMoM = players[0]
	var scheduleSource PlayerRecord

	for _, p := range players {
		if p.Stat(StatApps) > stats.MaxApps {
			stats.MaxApps = p.Stat(StatApps)
			scheduleSource = p
		}
		if p.Stat(StatGoals) > stats.MaxGoals {
			stats.MaxGoals = p.Stat(StatGoals)
		}
		if p.Stat(StatCardPoints) > stats.BadBoy.Stat(StatCardPoints) {
			stats.BadBoy = p
		}
		if p.Stat(StatManOfTheMatch) > stats.MostMoM.Stat(StatManOfTheMatch) {
			stats.MostMoM = p
		}
	}

	for _, p := range players {
		if p.Stat(StatGoals) == stats.MaxGoals {
			stats.TopScorers = append(stats.TopScorers, p)
		}
	}

	// The team's results come from the most-capped player's match log,
	// on the assumption that they were present for every fixture.
	stats.ScheduleSource = scheduleSource.Name
	validateScheduleSource(scheduleSource, players)

	bestMargin := -1
	for _, entry := range scheduleSource.Matches {
		result := parseMatchResult(entry.Description)
		stats.Results = append(stats.Results, result)
		stats.Record.GoalsFor += result.GoalsFor
		stats.Record.GoalsAgainst += result.GoalsAgainst
		stats.FormGuide = append(stats.FormGuide, result.Outcome)

		switch result.Outcome {
		case OutcomeWin:
			stats.Record.Wins++
			if margin := result.GoalsFor - result.GoalsAgainst; margin > bestMargin {
				bestMargin = margin
				stats.BiggestWin = &BiggestWin{
					Opponent: result.Opponent,
					Score:    fmt.Sprintf("%d-%d", result.GoalsFor, result.GoalsAgainst),
					Margin:   margin,
				}
			}
		case OutcomeDraw:
			stats.Record.Draws++
		case OutcomeLoss:
			stats.Record.Losses++
		}
	}

	return stats
}

// validateScheduleSource logs when any player's appearance count
// exceeds the schedule source's match log. That would mean the
// most-capped player missed a fixture and the team record is
// incomplete. Logged rather than fatal: the figures shown are still
// self-consistent.
func validateScheduleSource(source PlayerRecord, players []PlayerRecord) {
	for _, p := range players {
		if p.Stat(StatApps) > len(source.Matches) {
			log.Printf("schedule source %s has %d logged matches but %s made %d appearances",
				source.Name, len(source.Matches), p.Name, p.Stat(StatApps))
		}
	}
}
