package main

// Scenario describes a custom building layout in YAML. Scenarios exist so
// that layouts can be edited and tested without recompiling: point the config
// at a scenario file and the game builds its World from it instead of the
// default building. The pillar convention is the same as in code: the 4
// pieces starting at index PillarFirst are the pillars.
type Scenario struct {
	Pieces []ScenarioPiece `yaml:"Pieces"`
}

type ScenarioPiece struct {
	X      float64    `yaml:"X"`
	Y      float64    `yaml:"Y"`
	Width  float64    `yaml:"Width"`
	Height float64    `yaml:"Height"`
	Color  [3]float64 `yaml:"Color"`
	Offset float64    `yaml:"Offset"`
}

func (s *Scenario) GetLayout() (layout []PieceParams) {
	for _, p := range s.Pieces {
		layout = append(layout, PieceParams{
			X:               p.X,
			Y:               p.Y,
			Width:           p.Width,
			Height:          p.Height,
			R:               p.Color[0],
			G:               p.Color[1],
			B:               p.Color[2],
			DisappearOffset: p.Offset,
		})
	}
	return
}
