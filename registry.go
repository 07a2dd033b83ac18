package main

import "fmt"

// Piece is one rectangle of the building. Pieces are created once when the
// World is constructed and live in a flat slice for the whole round. The only
// field that ever changes is Removed: the collapse animation sets it and
// Reset() clears it.
type Piece struct {
	X               float64
	Y               float64
	Width           float64
	Height          float64
	R, G, B         float64
	DisappearOffset float64
	Removed         bool
}

// BuildPieces constructs the piece registry from a layout table. A malformed
// layout is a programming error, not a runtime condition, so invariants are
// checked here, once, instead of being re-checked every frame:
// - there must be enough pieces that the pillar indices exist
// - every disappear offset must fall inside the collapse animation, otherwise
// the piece would never get its disappear window.
func BuildPieces(params []PieceParams) []Piece {
	if len(params) < PillarFirst+NPillars {
		Check(fmt.Errorf("layout has %d pieces, need at least %d so that "+
			"pillars exist", len(params), PillarFirst+NPillars))
	}

	pieces := make([]Piece, len(params))
	for i, p := range params {
		Assert(p.DisappearOffset >= 0)
		Assert(p.DisappearOffset < BoomDuration)
		Assert(p.Width > 0 && p.Height > 0)
		pieces[i] = Piece{
			X:               p.X,
			Y:               p.Y,
			Width:           p.Width,
			Height:          p.Height,
			R:               p.R,
			G:               p.G,
			B:               p.B,
			DisappearOffset: p.DisappearOffset,
		}
	}
	return pieces
}

// IsPillar says whether the piece at index i is one of the 4 pillars.
func IsPillar(i int) bool {
	return i >= PillarFirst && i < PillarFirst+NPillars
}
