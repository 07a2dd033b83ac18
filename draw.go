package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// Visual areas
// ------------
//
// The scene is the space the World is aware of: X in [-6, 6], Y in [-5, 5],
// Y going up. The screen is a fixed logical bitmap; ebitengine scales it to
// the application window, preserving the aspect ratio.

const ScreenWidth = 1000
const ScreenHeight = 800

const SceneHalfWidth = 6.0
const SceneHalfHeight = 5.0

const pixelsPerUnitX = ScreenWidth / (2 * SceneHalfWidth)
const pixelsPerUnitY = ScreenHeight / (2 * SceneHalfHeight)

func sceneToScreen(x, y float64) (sx, sy float64) {
	sx = (x + SceneHalfWidth) * pixelsPerUnitX
	sy = (SceneHalfHeight - y) * pixelsPerUnitY
	return
}

func floatColor(r, g, b float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(Clamp(r, 0, 1) * 255),
		G: uint8(Clamp(g, 0, 1) * 255),
		B: uint8(Clamp(b, 0, 1) * 255),
		A: 255,
	}
}

func (g *Gui) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return ScreenWidth, ScreenHeight
}

func (g *Gui) Draw(screen *ebiten.Image) {
	if g.imgWhite == nil {
		g.imgWhite = ebiten.NewImage(1, 1)
		g.imgWhite.Fill(color.White)
	}

	bgR, bgG, bgB := BackgroundColor(g.world.Outcome, g.world.AvgOpacity(),
		g.world.Boom)
	screen.Fill(floatColor(bgR, bgG, bgB))

	for i := range g.world.Pieces {
		p := &g.world.Pieces[i]
		t, visible := g.world.Boom.PieceTransform(p)
		if !visible {
			continue
		}
		g.DrawPiece(screen, i, p, t)
	}

	g.DrawHud(screen)
}

// DrawPiece renders one piece with its current transform. A piece is a unit
// quad centered on the origin, scaled to its size, shrunk by the
// disintegration scale, rotated, and placed at its (shaken) center. The
// rotation is negated because screen Y grows down while scene Y grows up.
func (g *Gui) DrawPiece(screen *ebiten.Image, i int, p *Piece, t Transform) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-0.5, -0.5)
	op.GeoM.Scale(t.Width*t.Scale*pixelsPerUnitX, t.Height*t.Scale*pixelsPerUnitY)
	op.GeoM.Rotate(-t.Angle)
	sx, sy := sceneToScreen(t.X, t.Y)
	op.GeoM.Translate(sx, sy)

	op.ColorScale.Scale(float32(p.R), float32(p.G), float32(p.B), 1)
	// Only pillars fade, and only while their opacity still matters.
	if IsPillar(i) && g.world.Outcome == InProgress && !g.world.Boom.Active {
		op.ColorScale.ScaleAlpha(float32(g.world.PillarOpacity[i-PillarFirst]))
	}

	screen.DrawImage(g.imgWhite, op)
}

func (g *Gui) DrawHud(screen *ebiten.Image) {
	w := &g.world
	hud := fmt.Sprintf(
		"Time left: %4.1fs | Avg: %.2f | P1: %.2f P2: %.2f P3: %.2f P4: %.2f",
		max(RoundDuration-w.Timer, 0), w.AvgOpacity(),
		w.PillarOpacity[0], w.PillarOpacity[1],
		w.PillarOpacity[2], w.PillarOpacity[3])
	textColor := color.NRGBA{R: 20, G: 20, B: 20, A: 255}
	g.DrawText(screen, hud, 10, 36, textColor)
	g.DrawText(screen, w.Status, 10, 72, textColor)
	g.DrawText(screen, fmt.Sprintf("Wins: %d", g.Wins), 10, 108, textColor)

	switch g.screen {
	case Playback:
		g.DrawText(screen, fmt.Sprintf(
			"PLAYBACK %d/%d  (space: pause, arrows: seek)",
			g.frameIdx, len(g.playthrough.History)),
			10, ScreenHeight-20, textColor)
	case DebugCrash:
		g.DrawText(screen, fmt.Sprintf(
			"DEBUG %d/%d  (d/right: next frame, a/left: previous frame)",
			g.frameIdx, len(g.playthrough.History)),
			10, ScreenHeight-20, textColor)
	}
}

func (g *Gui) DrawText(screen *ebiten.Image, message string, x, y int, clr color.Color) {
	// The (x, y) passed to text.Draw is the baseline origin: most of the text
	// appears above y and a little bit under it.
	text.Draw(screen, message, g.defaultFont, x, y, clr)
}
