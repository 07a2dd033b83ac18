package main

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// InputVersion is the version of the byte representation of the Playthrough
// structure. If the Playthrough structure changes such that serializing it
// produces a different array of bytes, then InputVersion must change as well.
// An executable can replay any playthrough with the same InputVersion and
// SimulationVersion as its own. Out of the 3 versions (ReleaseVersion,
// SimulationVersion and InputVersion), InputVersion is the one expected to
// change the least often.
const InputVersion = 1

// Playthrough represents all the input sent to a World during one session.
// The layout is included so that a playthrough recorded on a custom scenario
// replays on that same scenario. Given the layout and the input history, the
// same sequence of World states is generated every time.
type Playthrough struct {
	InputVersion      int64
	SimulationVersion int64
	ReleaseVersion    int64
	Layout            []PieceParams
	Id                uuid.UUID
	History           []PlayerInput
}

func (p *Playthrough) Serialize() []byte {
	buf := new(bytes.Buffer)
	Serialize(buf, p.InputVersion)
	Serialize(buf, p.SimulationVersion)
	Serialize(buf, p.ReleaseVersion)
	SerializeSlice(buf, p.Layout)
	Serialize(buf, p.Id)
	SerializeSlice(buf, p.History)
	return Zip(buf.Bytes())
}

func (p *Playthrough) Clone() *Playthrough {
	clone := *p
	clone.Layout = slices.Clone(p.Layout)
	clone.History = slices.Clone(p.History)
	return &clone
}

func DeserializePlaythrough(data []byte) (p Playthrough) {
	buf := bytes.NewBuffer(Unzip(data))
	Deserialize(buf, &p.InputVersion)
	if p.InputVersion != InputVersion {
		Check(fmt.Errorf("can't deserialize this playthrough - we are at "+
			"InputVersion %d and playthrough was generated with InputVersion "+
			"%d", InputVersion, p.InputVersion))
	}
	Deserialize(buf, &p.SimulationVersion)
	Deserialize(buf, &p.ReleaseVersion)
	DeserializeSlice(buf, &p.Layout)
	Deserialize(buf, &p.Id)
	DeserializeSlice(buf, &p.History)
	return
}
