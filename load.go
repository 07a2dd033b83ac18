package main

import (
	"embed"

	"github.com/goccy/go-yaml"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

func LoadYAML(fsys FS, path string, v any) {
	data, err := fsys.ReadFile(path)
	Check(err)
	Check(yaml.Unmarshal(data, v))
}

func (g *Gui) LoadGuiData() {
	// Read from the disk over and over until a full read is possible.
	// This repetition is meant to avoid crashes due to reading files
	// while they are still being written (the dev-mode folder watcher
	// triggers a reload as soon as a file changes on disk).
	// When we're reading from the embedded filesystem we want to crash as
	// soon as possible instead: we might be in the browser, in which case we
	// want an error in the developer console, not a page that loads forever.
	previousVal := CheckCrashes
	if _, embedded := g.FSys.(*embed.FS); !embedded {
		CheckCrashes = false
	}
	for {
		CheckFailed = nil
		if g.devModeEnabled {
			LoadYAML(g.FSys, "data/config-dev.yaml", &g.Config)
		} else {
			LoadYAML(g.FSys, "data/config.yaml", &g.Config)
		}

		if CheckFailed == nil {
			break
		}
	}
	CheckCrashes = previousVal

	fontData, err := opentype.Parse(goregular.TTF)
	Check(err)

	g.defaultFont, err = opentype.NewFace(fontData, &opentype.FaceOptions{
		Size:    28,
		DPI:     72,
		Hinting: font.HintingVertical,
	})
	Check(err)
}
