package main

// Scene layout
// ------------
//
// The building is a fixed set of rectangles in scene coordinates. Scene
// coordinates go from -6 to 6 on X and from -5 to 5 on Y, with Y going up.
// Every piece is an axis-aligned rectangle described by its center, its size
// and a flat color.
//
// Each piece also carries a disappear offset: the moment, measured in seconds
// from the start of the collapse, when that piece starts disintegrating. The
// offsets stagger the destruction so the building collapses progressively
// instead of all at once. Pillars go first, then windows, then the gate.

// Pillars are the 4 pieces whose opacity decides the round. They sit at fixed
// positions in the layout, right after the bodies and the roofs.
const PillarFirst = 5
const NPillars = 4

// PieceParams is the data needed to construct one piece. It is pure data so
// it can be serialized into playthroughs and loaded from scenario files.
type PieceParams struct {
	X               float64
	Y               float64
	Width           float64
	Height          float64
	R, G, B         float64
	DisappearOffset float64
}

// DefaultLayout returns the standard building: 3 bodies, 2 roofs, 4 pillars,
// 14 windows and a 6-piece gate.
func DefaultLayout() []PieceParams {
	bodyColor := [3]float64{0.8, 0.4, 0.2}
	roofColor := [3]float64{0.6, 0.3, 0.1}
	windowColor := [3]float64{0.2, 0.5, 0.8}
	gateColor := [3]float64{1.0, 1.0, 1.0}

	piece := func(x, y, w, h float64, c [3]float64, offset float64) PieceParams {
		return PieceParams{X: x, Y: y, Width: w, Height: h,
			R: c[0], G: c[1], B: c[2], DisappearOffset: offset}
	}

	return []PieceParams{
		// Bodies.
		piece(-3.0, 0.5, 2.0, 5.0, bodyColor, 0.35),
		piece(0.0, 0.2, 4.4, 2.0, bodyColor, 0.4),
		piece(3.0, 0.1, 2.0, 3.5, bodyColor, 0.35),

		// Roofs.
		piece(-3.0, 2.8, 2.2, 0.5, roofColor, 0.32),
		piece(3.0, 1.95, 2.2, 0.5, roofColor, 0.32),

		// Pillars, front pair then back pair. These must stay at indices
		// PillarFirst..PillarFirst+NPillars-1.
		piece(-1.2, -1.3, 0.4, 1.2, [3]float64{0.5, 0.25, 0.1}, 0.86),
		piece(1.2, -1.3, 0.4, 1.2, [3]float64{0.5, 0.25, 0.1}, 0.87),
		piece(-0.6, -1.35, 0.25, 1.1, [3]float64{0.4, 0.2, 0.08}, 0.88),
		piece(0.6, -1.35, 0.25, 1.1, [3]float64{0.4, 0.2, 0.08}, 0.89),

		// Left building windows.
		piece(-3.4, 1.5, 0.35, 0.35, windowColor, 0.5),
		piece(-3.0, 1.5, 0.35, 0.35, windowColor, 0.52),
		piece(-3.4, 0.5, 0.35, 0.35, windowColor, 0.54),
		piece(-3.0, 0.5, 0.35, 0.35, windowColor, 0.56),

		// Right building windows.
		piece(3.0, 1.0, 0.35, 0.35, windowColor, 0.5),
		piece(3.4, 1.0, 0.35, 0.35, windowColor, 0.52),
		piece(3.0, 0.0, 0.35, 0.35, windowColor, 0.54),
		piece(3.4, 0.0, 0.35, 0.35, windowColor, 0.56),

		// Center building windows.
		piece(-1.2, 0.7, 0.35, 0.35, windowColor, 0.6),
		piece(0.0, 0.7, 0.35, 0.35, windowColor, 0.62),
		piece(1.2, 0.7, 0.35, 0.35, windowColor, 0.64),
		piece(-1.2, -0.1, 0.35, 0.35, windowColor, 0.65),
		piece(0.0, -0.1, 0.35, 0.35, windowColor, 0.67),
		piece(1.2, -0.1, 0.35, 0.35, windowColor, 0.69),

		// Gate: one wide slab and five bars.
		piece(0.0, -1.95, 3.2, 0.9, gateColor, 0.8),
		piece(-1.3, -1.95, 0.15, 0.9, gateColor, 0.81),
		piece(-0.6, -1.95, 0.15, 0.9, gateColor, 0.82),
		piece(0.0, -1.95, 0.15, 0.9, gateColor, 0.83),
		piece(0.6, -1.95, 0.15, 0.9, gateColor, 0.84),
		piece(1.3, -1.95, 0.15, 0.9, gateColor, 0.85),
	}
}
