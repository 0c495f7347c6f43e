package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNavigatorAdvanceRetreat tests basic deck movement
func TestNavigatorAdvanceRetreat(t *testing.T) {
	nav := NewNavigator(5, 4)

	result := nav.Apply(TransitionAdvance)
	assert.Equal(t, NavigationState{Index: 1, Direction: 1}, result.State)
	assert.False(t, result.Closed)
	assert.True(t, result.Effects.PlaySound)
	assert.False(t, result.Effects.Celebrate)

	result = nav.Apply(TransitionRetreat)
	assert.Equal(t, NavigationState{Index: 0, Direction: -1}, result.State)
	assert.True(t, result.Effects.PlaySound)
}

// TestNavigatorDirectionIsAbsolute tests that direction reports the
// last move only, never an accumulated count
func TestNavigatorDirectionIsAbsolute(t *testing.T) {
	nav := NewNavigator(10, 9)

	for i := 0; i < 5; i++ {
		result := nav.Apply(TransitionAdvance)
		assert.Equal(t, 1, result.State.Direction)
	}

	result := nav.Apply(TransitionRetreat)
	assert.Equal(t, -1, result.State.Direction, "a retreat animates backward regardless of history")

	for i := 0; i < 3; i++ {
		result = nav.Apply(TransitionRetreat)
		assert.Contains(t, []int{-1, 0, 1}, result.State.Direction)
	}
	result = nav.Apply(TransitionAdvance)
	assert.Equal(t, 1, result.State.Direction)
}

// TestNavigatorRetreatAtStart tests that the first slide absorbs retreats
func TestNavigatorRetreatAtStart(t *testing.T) {
	nav := NewNavigator(5, 4)

	result := nav.Apply(TransitionRetreat)
	assert.Equal(t, NavigationState{Index: 0, Direction: 0}, result.State)
	assert.False(t, result.Closed)
	assert.False(t, result.Effects.PlaySound, "a refused move has no effects")
}

// TestNavigatorAdvancePastEnd tests that leaving the last slide closes the deck
func TestNavigatorAdvancePastEnd(t *testing.T) {
	nav := NewNavigator(3, 2)

	nav.Apply(TransitionAdvance)
	nav.Apply(TransitionAdvance)
	assert.Equal(t, 2, nav.State().Index)

	result := nav.Apply(TransitionAdvance)
	assert.True(t, result.Closed)
	assert.Equal(t, 2, result.State.Index, "closing does not move the index")
	assert.True(t, nav.Closed())

	// Everything after close is inert.
	result = nav.Apply(TransitionRetreat)
	assert.True(t, result.Closed)
	assert.False(t, result.Effects.PlaySound)
}

// TestNavigatorCelebrateOnSummary tests the one-shot celebration effect
func TestNavigatorCelebrateOnSummary(t *testing.T) {
	nav := NewNavigator(3, 2)

	result := nav.Apply(TransitionAdvance)
	assert.False(t, result.Effects.Celebrate)

	result = nav.Apply(TransitionAdvance)
	assert.True(t, result.Effects.Celebrate, "arriving on the summary celebrates")

	// Reading state afterwards carries no effects at all.
	assert.Equal(t, 2, nav.State().Index)

	// Leaving and returning celebrates again: it is an index-change
	// effect, not a once-per-session flag.
	nav.Apply(TransitionRetreat)
	result = nav.Apply(TransitionAdvance)
	assert.True(t, result.Effects.Celebrate)
}

// TestNavigatorClose tests explicit dismissal
func TestNavigatorClose(t *testing.T) {
	nav := NewNavigator(5, 4)
	nav.Apply(TransitionAdvance)

	result := nav.Apply(TransitionClose)
	assert.True(t, result.Closed)
	assert.Equal(t, 1, result.State.Index)
}

// TestMapInput tests gesture-to-transition mapping
func TestMapInput(t *testing.T) {
	tests := []struct {
		name     string
		event    InputEvent
		expected Transition
		wantErr  bool
	}{
		{"tap left third", InputEvent{Type: "tap", X: 100, Width: 390}, TransitionRetreat, false},
		{"tap exactly on boundary", InputEvent{Type: "tap", X: 130, Width: 390}, TransitionAdvance, false},
		{"tap right side", InputEvent{Type: "tap", X: 300, Width: 390}, TransitionAdvance, false},
		{"tap zero width", InputEvent{Type: "tap", X: 10, Width: 0}, "", true},
		{"tap negative width", InputEvent{Type: "tap", X: 10, Width: -5}, "", true},
		{"left arrow", InputEvent{Type: "key", Key: "ArrowLeft"}, TransitionRetreat, false},
		{"right arrow", InputEvent{Type: "key", Key: "ArrowRight"}, TransitionAdvance, false},
		{"space bar", InputEvent{Type: "key", Key: " "}, TransitionAdvance, false},
		{"escape", InputEvent{Type: "key", Key: "Escape"}, TransitionClose, false},
		{"unmapped key", InputEvent{Type: "key", Key: "Enter"}, "", true},
		{"unknown type", InputEvent{Type: "swipe"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transition, err := mapInput(tt.event)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, transition)
		})
	}
}
