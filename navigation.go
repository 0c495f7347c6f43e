package main

import "fmt"

// Transition is one navigation action against the deck.
type Transition string

const (
	TransitionAdvance Transition = "advance"
	TransitionRetreat Transition = "retreat"
	TransitionClose   Transition = "close"
)

// NavigationState is the viewer's position in the deck. Direction is
// +1 after a forward move, -1 after a backward move and 0 before any
// move, so the client can animate the transition the right way.
type NavigationState struct {
	Index     int `json:"index"`
	Direction int `json:"direction"`
}

// Effects are the one-shot side effects of an index change. They are
// reported exactly once per transition; re-reading the state never
// replays them.
type Effects struct {
	PlaySound bool `json:"play_sound"`
	Celebrate bool `json:"celebrate"`
}

// TransitionResult is what a single navigation input produced.
type TransitionResult struct {
	State   NavigationState `json:"state"`
	Closed  bool            `json:"closed"`
	Effects Effects         `json:"effects"`
}

// Navigator walks a fixed-length deck. Advancing past the last slide
// closes the deck; retreating from the first slide is a no-op.
type Navigator struct {
	state        NavigationState
	length       int
	summaryIndex int
	closed       bool
}

// NewNavigator positions a viewer at the start of a deck of the given
// length. summaryIndex marks the slide whose arrival triggers the
// celebration effect.
func NewNavigator(length, summaryIndex int) *Navigator {
	return &Navigator{length: length, summaryIndex: summaryIndex}
}

// State returns the current position without side effects.
func (n *Navigator) State() NavigationState {
	return n.state
}

// Closed reports whether the deck has been dismissed.
func (n *Navigator) Closed() bool {
	return n.closed
}

// Apply runs one transition and returns the resulting state plus any
// effects the index change produced.
func (n *Navigator) Apply(t Transition) TransitionResult {
	if n.closed {
		return TransitionResult{State: n.state, Closed: true}
	}

	switch t {
	case TransitionAdvance:
		if n.state.Index >= n.length-1 {
			n.closed = true
			return TransitionResult{State: n.state, Closed: true}
		}
		n.state.Index++
		n.state.Direction = 1
	case TransitionRetreat:
		if n.state.Index == 0 {
			return TransitionResult{State: n.state}
		}
		n.state.Index--
		n.state.Direction = -1
	case TransitionClose:
		n.closed = true
		return TransitionResult{State: n.state, Closed: true}
	default:
		return TransitionResult{State: n.state}
	}

	return TransitionResult{
		State: n.state,
		Effects: Effects{
			PlaySound: true,
			Celebrate: n.state.Index == n.summaryIndex,
		},
	}
}

// InputEvent is a raw viewer gesture from the client. Taps carry the
// horizontal position and viewport width; keys carry the key name.
type InputEvent struct {
	Type  string  `json:"type"`
	X     float64 `json:"x"`
	Width float64 `json:"width"`
	Key   string  `json:"key"`
}

// mapInput translates a gesture into a transition. Taps on the left
// third of the screen go back, anywhere else goes forward.
func mapInput(ev InputEvent) (Transition, error) {
	switch ev.Type {
	case "tap":
		if ev.Width <= 0 {
			return "", fmt.Errorf("tap event requires a positive width, got %v", ev.Width)
		}
		if ev.X < ev.Width/3 {
			return TransitionRetreat, nil
		}
		return TransitionAdvance, nil
	case "key":
		switch ev.Key {
		case "ArrowLeft":
			return TransitionRetreat, nil
		case "ArrowRight", " ":
			return TransitionAdvance, nil
		case "Escape":
			return TransitionClose, nil
		default:
			return "", fmt.Errorf("unmapped key: %q", ev.Key)
		}
	default:
		return "", fmt.Errorf("unknown input type: %q", ev.Type)
	}
}
