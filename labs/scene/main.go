package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// A static scene: a square body with a triangle roof on top, drawn from a
// fixed vertex list every frame. The geometry never changes; the whole
// program is the draw loop.

const ScreenWidth = 800
const ScreenHeight = 600

var whiteImage = ebiten.NewImage(3, 3)

// The vertex source must not touch the image's edges to avoid bleeding, so
// use the center pixel.
var whiteSubImage *ebiten.Image

func init() {
	whiteImage.Fill(color.White)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

type Game struct{}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyR) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)

	// Normalized coordinates, (-1, -1) bottom-left to (1, 1) top-right, same
	// as the vertex list they come from.
	toScreenX := func(x float32) float32 { return (x + 1) / 2 * ScreenWidth }
	toScreenY := func(y float32) float32 { return (1 - y) / 2 * ScreenHeight }

	body := color.NRGBA{R: 204, G: 102, B: 51, A: 255}

	// Square body: (-0.5, -0.5) to (0.5, 0.5).
	vector.DrawFilledRect(screen,
		toScreenX(-0.5), toScreenY(0.5),
		ScreenWidth/2, ScreenHeight/2,
		body, false)

	// Triangle roof: shares the square's top edge, peak at (0, 0.9).
	var path vector.Path
	path.MoveTo(toScreenX(-0.5), toScreenY(0.5))
	path.LineTo(toScreenX(0.5), toScreenY(0.5))
	path.LineTo(toScreenX(0), toScreenY(0.9))
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(body.R) / 255
		vs[i].ColorG = float32(body.G) / 255
		vs[i].ColorB = float32(body.B) / 255
		vs[i].ColorA = 1
	}
	screen.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{})
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func main() {
	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("House Scene")
	if err := ebiten.RunGame(&Game{}); err != nil {
		panic(err)
	}
}
