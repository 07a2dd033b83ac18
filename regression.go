package main

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
)

// StateBytes is an array of bytes that represent the current state of the
// World, as perceived by the outside. If two Worlds have the same StateBytes
// they are considered "the same", even if they are implemented differently.
//
// The fields included here are the ones that affect what the player sees:
// the pillar opacities (drive alpha and the background), the timer and
// outcome (drive the status and the win/lose screens), the collapse clock
// (drives every piece's transform) and the removed flags. The key latches
// are intentionally left out: they are input plumbing, not world state.
func (w *World) StateBytes() []byte {
	buf := new(bytes.Buffer)
	Serialize(buf, w.PillarOpacity)
	Serialize(buf, w.Timer)
	Serialize(buf, int64(w.Outcome))
	Serialize(buf, w.Boom.Clock)
	Serialize(buf, w.Boom.Active)
	Serialize(buf, int64(len(w.Pieces)))
	for i := range w.Pieces {
		Serialize(buf, w.Pieces[i].Removed)
	}
	return buf.Bytes()
}

// RegressionId returns a string which uniquely identifies a playthrough's
// entire run: a hash of the World's state after construction and after every
// tick. It is meant to be computed before and after a refactoring of the
// World; if the id is unchanged, the refactoring did not alter behavior for
// that playthrough.
func RegressionId(p *Playthrough) string {
	hash := sha256.New()

	w := NewWorldFromPlaythrough(*p)
	hash.Write(w.StateBytes())

	for i := range p.History {
		w.Step(p.History[i])
		hash.Write(w.StateBytes())
	}

	return hex.EncodeToString(hash.Sum(nil))
}
