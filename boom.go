package main

import "math"

const (
	// BoomDuration is the total length of the collapse animation.
	BoomDuration = 2.5
	// DisappearWindow is how long one piece takes to disintegrate once its
	// disappear offset has passed.
	DisappearWindow = 0.5
	// ShakeAmplitude is the largest positional shake, in scene units. The
	// shake shrinks linearly to 0 as a piece's disintegration progresses.
	ShakeAmplitude = 0.1
	// Shake oscillator frequencies, radians per second of collapse clock.
	// Different per axis so the motion doesn't look like a circle.
	ShakeFreqX = 20.0
	ShakeFreqY = 25.0
	// MinPieceScale is the uniform scale a piece shrinks to right before it
	// disappears.
	MinPieceScale = 0.2
)

// Boom is the collapse animation. It starts when the round is lost, runs its
// clock for BoomDuration seconds and then goes inactive again. While it runs,
// each piece waits for its disappear offset, then disintegrates over
// DisappearWindow seconds: it shakes, spins a full turn and shrinks, and at
// the end of the window it is marked removed.
type Boom struct {
	Clock  float64
	Active bool
}

func (b *Boom) Start() {
	b.Clock = 0
	b.Active = true
}

// Advance moves the collapse clock forward and marks the pieces whose
// disappear window has fully elapsed. Removed flags are only ever set here,
// while the animation is active.
func (b *Boom) Advance(dt float64, pieces []Piece) {
	if !b.Active {
		return
	}
	b.Clock += dt

	for i := range pieces {
		if b.Clock-pieces[i].DisappearOffset >= DisappearWindow {
			pieces[i].Removed = true
		}
	}

	if b.Clock >= BoomDuration {
		b.Active = false
		b.Clock = 0
	}
}

// Transform is the decomposed placement of one piece for the current frame.
// The renderer composes it in this order: scale by (Width, Height), scale
// uniformly by Scale, rotate by Angle, translate to (X, Y). X and Y already
// include the shake offset.
type Transform struct {
	X, Y   float64
	Angle  float64
	Scale  float64
	Width  float64
	Height float64
}

// PieceTransform computes where and how to draw a piece right now. A piece
// rests at its declared position and size until the collapse clock passes its
// disappear offset, animates during its disappear window, and is invisible
// once removed.
func (b *Boom) PieceTransform(p *Piece) (t Transform, visible bool) {
	if p.Removed {
		return Transform{}, false
	}

	t = Transform{X: p.X, Y: p.Y, Scale: 1, Width: p.Width, Height: p.Height}
	if !b.Active {
		return t, true
	}

	sinceStart := b.Clock - p.DisappearOffset
	if sinceStart <= 0 {
		return t, true
	}
	if sinceStart >= DisappearWindow {
		// Advance marks such pieces removed; if the transform is queried
		// before the next Advance, skip the piece the same way.
		return Transform{}, false
	}

	progress := sinceStart / DisappearWindow

	// The shake phase is driven by the global collapse clock, not by the
	// piece's own progress, so neighboring pieces shake out of sync.
	shake := (1 - progress) * ShakeAmplitude
	t.X += math.Sin(b.Clock*ShakeFreqX) * shake
	t.Y += math.Cos(b.Clock*ShakeFreqY) * shake

	t.Angle = progress * 2 * math.Pi
	t.Scale = 1 - progress*(1-MinPieceScale)
	return t, true
}
