package main

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makePlaythrough() Playthrough {
	p := Playthrough{
		InputVersion:      InputVersion,
		SimulationVersion: SimulationVersion,
		ReleaseVersion:    ReleaseVersion,
		Layout:            DefaultLayout(),
		Id:                uuid.MustParse("b3c8e6ea-6d3a-4f59-a1f4-6f2a8b6f0d11"),
	}
	for i := range 300 {
		p.History = append(p.History, PlayerInput{
			DtMicros: 16667,
			Boost:    i%17 == 0,
		})
	}
	return p
}

func TestPlaythroughRoundTrip(t *testing.T) {
	p := makePlaythrough()
	data := p.Serialize()
	restored := DeserializePlaythrough(data)
	require.Equal(t, p, restored)
}

func TestPlaythroughClone(t *testing.T) {
	p := makePlaythrough()
	clone := p.Clone()
	require.Equal(t, p, *clone)

	// The clone owns its slices.
	clone.History[0].Boost = !clone.History[0].Boost
	clone.Layout[0].X += 1
	assert.NotEqual(t, p.History[0], clone.History[0])
	assert.NotEqual(t, p.Layout[0], clone.Layout[0])
}
