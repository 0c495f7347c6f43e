package main

import "fmt"

// TriviaState is the guess-the-scorer game phase.
type TriviaState string

const (
	TriviaGuessing        TriviaState = "guessing"
	TriviaPartiallySolved TriviaState = "partially_solved"
	TriviaSolved          TriviaState = "solved"
)

// TriviaGame tracks one session's guess-the-top-scorer game. There is
// no losing state: wrong guesses bounce off with a hint and the game
// only ever moves forward.
type TriviaGame struct {
	targets map[string]bool
	found   []string
	state   TriviaState
}

// NewTriviaGame starts a game whose answers are the squad's joint top
// scorers.
func NewTriviaGame(topScorers []PlayerRecord) *TriviaGame {
	targets := make(map[string]bool, len(topScorers))
	for _, p := range topScorers {
		targets[p.Name] = true
	}
	return &TriviaGame{targets: targets, state: TriviaGuessing}
}

// State returns the current phase.
func (g *TriviaGame) State() TriviaState {
	return g.state
}

// Found returns the correctly guessed names in guess order.
func (g *TriviaGame) Found() []string {
	return g.found
}

// GuessResult is the outcome of a single guess.
type GuessResult struct {
	Correct      bool        `json:"correct"`
	AlreadyFound bool        `json:"already_found"`
	State        TriviaState `json:"state"`
	Found        []string    `json:"found"`
	Remaining    int         `json:"remaining"`
	Message      string      `json:"message"`
	Reveal       bool        `json:"reveal"`
}

// Guess submits one player. Repeats of an already-found answer are
// no-ops. A wrong guess leaves the game state untouched and reports the
// guessed player's actual goal tally. Solving the last answer sets the
// reveal flag so the client can show the full leaderboard.
func (g *TriviaGame) Guess(p PlayerRecord) GuessResult {
	result := GuessResult{State: g.state, Found: g.found}

	if containsName(g.found, p.Name) {
		result.AlreadyFound = true
		result.Correct = true
		result.Remaining = len(g.targets) - len(g.found)
		result.Message = fmt.Sprintf("%s is already on the board.", p.Name)
		return result
	}

	if !g.targets[p.Name] {
		goals := p.Stat(StatGoals)
		noun := "goals"
		if goals == 1 {
			noun = "goal"
		}
		result.Remaining = len(g.targets) - len(g.found)
		result.Message = fmt.Sprintf("Not quite. %s finished on %d %s.", p.Name, goals, noun)
		return result
	}

	g.found = append(g.found, p.Name)
	if len(g.found) == len(g.targets) {
		g.state = TriviaSolved
	} else {
		g.state = TriviaPartiallySolved
	}

	result.Correct = true
	result.State = g.state
	result.Found = g.found
	result.Remaining = len(g.targets) - len(g.found)
	if g.state == TriviaSolved {
		result.Reveal = true
		result.Message = "Correct! That's all of them."
	} else {
		result.Message = fmt.Sprintf("Correct! %s is one of them. Keep going.", p.Name)
	}
	return result
}
