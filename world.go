package main

// World rules
// -----------
// - The 4 pillars each have an opacity in [0, 1]. Opacity decays at a fixed
// rate while the round is ongoing.
// - Pressing the boost key bumps every pillar's opacity by a fixed amount.
// Holding the key does nothing extra, only the press counts.
// - If any pillar's opacity drops below the survival threshold, the round is
// lost and the building collapses.
// - If the round timer reaches the round duration with no pillar ever below
// the threshold, the round is won.
// - Won and Lost are terminal. Nothing moves anymore except the collapse
// animation, until the player resets.
//
// The World is stepped once per frame with the frame's input and elapsed
// time. It touches no globals, no clocks and no random numbers, so a sequence
// of PlayerInputs fully determines every state the World goes through. That
// is what makes playthrough replay and regression hashing possible.

// SimulationVersion is the version of the simulation behavior. If the World
// reacts differently to the same sequence of inputs than it did before, this
// must change. Refactorings that keep behavior identical (checked via
// RegressionId) keep the version.
const SimulationVersion = 1

const (
	// OpacityFadeRate is how much opacity each pillar loses per second.
	OpacityFadeRate = 0.2
	// OpacityGainRate is how much opacity one boost restores.
	OpacityGainRate = 0.25
	// OpacityThreshold is the opacity below which a pillar fails.
	OpacityThreshold = 0.55
	// RoundDuration is how long the player must keep the pillars alive.
	RoundDuration = 10.0
)

const StatusDefault = "Keep clicking!"
const StatusWon = "Won! Building saved!"
const StatusLost = "Lost! Pillars collapsed!"

type Outcome int64

const (
	InProgress Outcome = iota
	Won
	Lost
)

// PlayerInput is everything the World receives for one tick. Boost and Reset
// are level-sampled (is the key down right now); the World does its own edge
// detection so that replays don't depend on who debounced what.
// The elapsed time is carried in microseconds so that serialized playthroughs
// are integer-exact.
type PlayerInput struct {
	DtMicros int64
	Boost    bool
	Reset    bool
	Quit     bool
}

func (p *PlayerInput) Dt() float64 {
	return float64(p.DtMicros) / 1e6
}

func (p *PlayerInput) EventOccurred() bool {
	return p.Boost || p.Reset || p.Quit
}

type World struct {
	Pieces        []Piece
	PillarOpacity [NPillars]float64
	Timer         float64
	Outcome       Outcome
	Status        string
	Boom          Boom

	// Key latches for edge detection.
	boostHeld bool
	resetHeld bool
}

func NewWorld(layout []PieceParams) (w World) {
	w.Pieces = BuildPieces(layout)
	for i := range w.PillarOpacity {
		w.PillarOpacity[i] = 1
	}
	w.Status = StatusDefault
	return w
}

func NewWorldFromPlaythrough(p Playthrough) World {
	return NewWorld(p.Layout)
}

// Step advances the World by one tick. The fixed order is: input edges,
// boost, decay, lose check, timer and win check, collapse animation. Lose is
// checked before win so that a tick which could satisfy both is a loss.
func (w *World) Step(input PlayerInput) {
	dt := input.Dt()
	Assert(dt >= 0)

	resetEdge := input.Reset && !w.resetHeld
	w.resetHeld = input.Reset
	boostEdge := input.Boost && !w.boostHeld
	w.boostHeld = input.Boost

	if resetEdge {
		w.Reset()
	}
	if boostEdge {
		w.BoostPillars()
	}

	w.stepRound(dt)

	if w.Boom.Active {
		w.Boom.Advance(dt, w.Pieces)
	}
}

func (w *World) stepRound(dt float64) {
	if w.Outcome != InProgress || w.Boom.Active {
		return
	}

	w.DecayPillars(dt)

	for i := range w.PillarOpacity {
		if w.PillarOpacity[i] < OpacityThreshold {
			w.Outcome = Lost
			w.Status = StatusLost
			w.Boom.Start()
			return
		}
	}

	w.Timer += dt
	if w.Timer >= RoundDuration {
		w.Outcome = Won
		w.Status = StatusWon
	}
}

// DecayPillars lowers every pillar's opacity for dt seconds of fading,
// clamped at 0. It is a no-op outside an ongoing round.
func (w *World) DecayPillars(dt float64) {
	if w.Outcome != InProgress || w.Boom.Active {
		return
	}
	for i := range w.PillarOpacity {
		w.PillarOpacity[i] = max(w.PillarOpacity[i]-OpacityFadeRate*dt, 0)
	}
}

// BoostPillars restores a fixed amount of opacity to every pillar, clamped
// at 1. It is a no-op outside an ongoing round.
func (w *World) BoostPillars() {
	if w.Outcome != InProgress || w.Boom.Active {
		return
	}
	for i := range w.PillarOpacity {
		w.PillarOpacity[i] = min(w.PillarOpacity[i]+OpacityGainRate, 1)
	}
}

func (w *World) AvgOpacity() float64 {
	sum := 0.0
	for i := range w.PillarOpacity {
		sum += w.PillarOpacity[i]
	}
	return sum / NPillars
}

// Reset puts the World back into its post-construction state: full
// opacities, zero timer, round in progress, no collapse, no removed pieces.
func (w *World) Reset() {
	for i := range w.PillarOpacity {
		w.PillarOpacity[i] = 1
	}
	w.Timer = 0
	w.Outcome = InProgress
	w.Status = StatusDefault
	w.Boom = Boom{}
	for i := range w.Pieces {
		w.Pieces[i].Removed = false
	}
}

func Clamp(x, low, high float64) float64 {
	if x < low {
		return low
	}
	if x > high {
		return high
	}
	return x
}
