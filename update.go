package main

import (
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

func (g *Gui) Update() error {
	g.pressedKeys = g.pressedKeys[:0]
	g.pressedKeys = inpututil.AppendPressedKeys(g.pressedKeys)
	g.justPressedKeys = g.justPressedKeys[:0]
	g.justPressedKeys = inpututil.AppendJustPressedKeys(g.justPressedKeys)

	// In dev mode, pick up config edits without restarting.
	if g.devModeEnabled && g.folderWatcher.FolderContentsChanged() {
		g.LoadGuiData()
	}

	switch g.screen {
	case PlayScreen:
		return g.UpdatePlaying()
	case Playback:
		g.UpdatePlayback()
	case DebugCrash:
		g.UpdateDebugCrash()
	default:
		panic("unhandled default case")
	}

	return nil
}

func (g *Gui) Pressed(key ebiten.Key) bool {
	return slices.Contains(g.pressedKeys, key)
}

func (g *Gui) JustPressed(key ebiten.Key) bool {
	return slices.Contains(g.justPressedKeys, key)
}

func (g *Gui) UpdatePlaying() error {
	// Get the player input. Keys are level-sampled; the World does its own
	// edge detection so that a recorded playthrough carries everything the
	// simulation needs.
	var input PlayerInput
	now := time.Now()
	input.DtMicros = max(now.Sub(g.lastFrameTime).Microseconds(), 0)
	g.lastFrameTime = now
	input.Boost = ebiten.IsKeyPressed(ebiten.KeySpace)
	input.Reset = ebiten.IsKeyPressed(ebiten.KeyR)
	input.Quit = ebiten.IsKeyPressed(ebiten.KeyEscape)

	// Save the input in the playthrough.
	g.playthrough.History = append(g.playthrough.History, input)
	if g.RecordToFile {
		// IMPORTANT: save the playthrough before stepping the World. If
		// a bug in the World causes it to crash, we want to save the input
		// that caused the bug before the program crashes.
		WriteFile(g.RecordingFile, g.playthrough.Serialize())
	}

	prevOutcome := g.world.Outcome
	g.world.Step(input)
	g.frameIdx++

	if prevOutcome == InProgress && g.world.Outcome != InProgress {
		g.onRoundEnded()
	}
	if prevOutcome != InProgress && g.world.Outcome == InProgress {
		// The player reset, the next finished round counts again.
		g.roundEnded = false
	}

	if input.Quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Gui) onRoundEnded() {
	if g.roundEnded {
		return
	}
	g.roundEnded = true

	if g.world.Outcome == Won {
		g.Wins++
		if avg := g.world.AvgOpacity(); avg > g.BestAvgOpacity {
			g.BestAvgOpacity = avg
		}
		g.uploadUserDataChannel <- g.UserData
	}

	// Every finished round gets uploaded, wins and losses alike. Lost rounds
	// are the interesting ones when tuning the difficulty.
	clone := g.playthrough.Clone()
	go UploadDataToDbHttp(g.username, ReleaseVersion, SimulationVersion,
		InputVersion, clone.Id, clone.Serialize())
}

func (g *Gui) UpdatePlayback() {
	nFrames := int64(len(g.playthrough.History))

	if g.JustPressed(ebiten.KeySpace) {
		g.playbackPaused = !g.playbackPaused
	}

	// Choose target frame.
	targetFrameIdx := g.frameIdx

	if g.JustPressed(ebiten.KeyLeft) && g.Pressed(ebiten.KeyAlt) {
		targetFrameIdx -= g.FrameSkipAltArrow
	}

	if g.JustPressed(ebiten.KeyRight) && g.Pressed(ebiten.KeyAlt) {
		targetFrameIdx += g.FrameSkipAltArrow
	}

	if g.Pressed(ebiten.KeyLeft) && g.Pressed(ebiten.KeyShift) {
		targetFrameIdx -= g.FrameSkipShiftArrow
	}

	if g.Pressed(ebiten.KeyRight) && g.Pressed(ebiten.KeyShift) {
		targetFrameIdx += g.FrameSkipShiftArrow
	}

	if g.Pressed(ebiten.KeyLeft) && !g.Pressed(ebiten.KeyShift) && !g.Pressed(ebiten.KeyAlt) {
		if g.playbackPaused {
			targetFrameIdx -= g.FrameSkipArrow
		} else {
			targetFrameIdx -= g.FrameSkipArrow * 2
		}
	}

	if g.Pressed(ebiten.KeyRight) && !g.Pressed(ebiten.KeyShift) && !g.Pressed(ebiten.KeyAlt) {
		targetFrameIdx += g.FrameSkipArrow
	}

	if targetFrameIdx < 0 {
		targetFrameIdx = 0
	}

	if targetFrameIdx >= nFrames {
		targetFrameIdx = nFrames - 1
	}

	if targetFrameIdx != g.frameIdx {
		// Rewind: the only way back is to rebuild the world and replay it
		// from the start.
		g.world = NewWorldFromPlaythrough(g.playthrough)
		for i := int64(0); i < targetFrameIdx; i++ {
			g.world.Step(g.playthrough.History[i])
		}
		g.frameIdx = targetFrameIdx
	}

	if !g.playbackPaused && nFrames > 0 {
		g.world.Step(g.playthrough.History[g.frameIdx])

		if g.frameIdx < nFrames-1 {
			g.frameIdx++
		}
	}
}

func (g *Gui) UpdateDebugCrash() {
	// Don't do anything, wait for the player to press a key.

	// Go to the next frame.
	goToNextFrame := g.JustPressed(ebiten.KeyD) || g.JustPressed(ebiten.KeyRight)
	if goToNextFrame && g.frameIdx < int64(len(g.playthrough.History)) {
		g.world.Step(g.playthrough.History[g.frameIdx])
		g.frameIdx++
	}

	// Go to the previous frame.
	goToPreviousFrame := g.JustPressed(ebiten.KeyA) || g.JustPressed(ebiten.KeyLeft)
	if goToPreviousFrame && g.frameIdx > 0 {
		g.frameIdx--

		// I have no better way to go to the previous frame than redoing all
		// the frames from the beginning.
		g.world = NewWorldFromPlaythrough(g.playthrough)
		for i := range g.frameIdx {
			g.world.Step(g.playthrough.History[i])
		}
	}
}
