package main

import (
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarioGetLayout(t *testing.T) {
	text := `
Pieces:
  - { X: -2.0, Y: 1.0, Width: 1.5, Height: 4.0, Color: [0.8, 0.4, 0.2], Offset: 0.3 }
  - { X: 2.0, Y: 1.0, Width: 1.5, Height: 4.0, Color: [0.8, 0.4, 0.2], Offset: 0.35 }
`
	var s Scenario
	require.NoError(t, yaml.Unmarshal([]byte(text), &s))

	layout := s.GetLayout()
	require.Len(t, layout, 2)
	assert.Equal(t, PieceParams{X: -2, Y: 1, Width: 1.5, Height: 4,
		R: 0.8, G: 0.4, B: 0.2, DisappearOffset: 0.3}, layout[0])
	assert.Equal(t, 0.35, layout[1].DisappearOffset)
}

func TestShippedScenarioBuildsAWorld(t *testing.T) {
	var s Scenario
	LoadYAML(&embeddedFiles, "data/scenario-towers.yaml", &s)

	w := NewWorld(s.GetLayout())
	require.GreaterOrEqual(t, len(w.Pieces), PillarFirst+NPillars)

	// A scenario world must survive a whole round without boosts: it loses
	// and collapses like the default one.
	for range 400 {
		w.Step(tick(1.0/50, false))
	}
	assert.Equal(t, Lost, w.Outcome)
	assert.False(t, w.Boom.Active)
	for i := range w.Pieces {
		assert.True(t, w.Pieces[i].Removed)
	}
}
