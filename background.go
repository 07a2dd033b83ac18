package main

import "math"

// FlashFrequency is how many times per second the background strobes during
// the collapse.
const FlashFrequency = 5.0

// BackgroundColor maps the game state to the frame's clear color. It is a
// pure function, recomputed every tick.
//
// While the round is ongoing the background fades from white to red as the
// average pillar opacity approaches the survival threshold. A lost round is
// steady red, except that while the collapse animation runs the background
// strobes between red and a brighter orange for the whole animation, even if
// every piece has already disappeared. A won round is green.
func BackgroundColor(outcome Outcome, avgOpacity float64, boom Boom) (r, g, b float64) {
	switch outcome {
	case Won:
		return 0.2, 1, 0.2
	case Lost:
		if boom.Active {
			flash := math.Sin(boom.Clock*2*math.Pi*FlashFrequency)*0.5 + 0.5
			return 0.5 + flash*0.5, 0.2 + flash*0.3, 0.2 + flash*0.3
		}
		return 1, 0.2, 0.2
	default:
		ratio := Clamp((avgOpacity-OpacityThreshold)/(1-OpacityThreshold), 0, 1)
		return 1, ratio, ratio
	}
}
