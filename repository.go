package main

import (
	"fmt"
	"sort"
	"strings"
)

// Roster is the read-only player repository backing every endpoint.
// The dataset is compiled in, so construction validates once and the
// lookups never touch anything mutable.
type Roster struct {
	players []PlayerRecord
	byName  map[string]int
	fines   map[string]string
}

// NewRoster builds the repository over the squad dataset. It fails on
// duplicate names or squad numbers rather than serving ambiguous lookups.
func NewRoster(players []PlayerRecord, fines map[string]string) (*Roster, error) {
	byName := make(map[string]int, len(players))
	byNumber := make(map[int]string, len(players))

	for i, p := range players {
		if _, dup := byName[p.Name]; dup {
			return nil, fmt.Errorf("duplicate player name: %s", p.Name)
		}
		if other, dup := byNumber[p.SquadNumber]; dup {
			return nil, fmt.Errorf("duplicate squad number %d: %s and %s", p.SquadNumber, other, p.Name)
		}
		byName[p.Name] = i
		byNumber[p.SquadNumber] = p.Name
	}

	return &Roster{players: players, byName: byName, fines: fines}, nil
}

// Players returns the squad in declaration order.
func (r *Roster) Players() []PlayerRecord {
	return r.players
}

// Len returns the squad size.
func (r *Roster) Len() int {
	return len(r.players)
}

// ByName looks up a player by exact name.
func (r *Roster) ByName(name string) (PlayerRecord, bool) {
	i, ok := r.byName[name]
	if !ok {
		return PlayerRecord{}, false
	}
	return r.players[i], true
}

// Fine returns a player's outstanding fines entry. Players missing
// from the ledger are paid up.
func (r *Roster) Fine(name string) (string, bool) {
	debt, ok := r.fines[name]
	return debt, ok
}

// Relevance scores for search results.
const (
	relevanceExact     = 100
	relevancePrefix    = 80
	relevanceSubstring = 60
)

// Search performs a case-insensitive name search, scored by match
// quality and sorted by descending relevance. Equal scores keep
// roster order.
func (r *Roster) Search(query string) []SearchResult {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	needle := strings.ToLower(query)

	var results []SearchResult
	for _, p := range r.players {
		name := strings.ToLower(p.Name)
		var score int
		switch {
		case name == needle:
			score = relevanceExact
		case strings.HasPrefix(name, needle):
			score = relevancePrefix
		case strings.Contains(name, needle):
			score = relevanceSubstring
		default:
			continue
		}
		results = append(results, SearchResult{
			SquadNumber: p.SquadNumber,
			Name:        p.Name,
			Relevance:   score,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Relevance > results[j].Relevance
	})
	return results
}
