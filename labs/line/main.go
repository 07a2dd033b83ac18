package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// A tiny rasterization demo: a diagonal line computed point by point with
// Bresenham's algorithm and written into a bitmap once, at startup. No
// per-frame work besides blitting the bitmap.

const ScreenWidth = 800
const ScreenHeight = 600

func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// LinePoints runs Bresenham's line algorithm between two integer points and
// returns every grid point on the way, ordered from start to end. Only
// integer arithmetic: the error term tracks how far the rasterized line has
// drifted from the ideal one and decides which neighbor pixel comes next.
func LinePoints(x0, y0, x1, y1 int) []image.Point {
	dx := Abs(x1 - x0)
	dy := Abs(y1 - y0)

	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}

	errTerm := dx - dy
	x, y := x0, y0

	var pts []image.Point
	for {
		pts = append(pts, image.Pt(x, y))
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * errTerm
		if e2 > -dy {
			errTerm -= dy
			x += sx
		}
		if e2 < dx {
			errTerm += dx
			y += sy
		}
	}
	return pts
}

type Game struct {
	img *ebiten.Image
}

func NewGame() *Game {
	g := &Game{}
	g.img = ebiten.NewImage(ScreenWidth, ScreenHeight)

	// The line goes from 10% to 90% of the bitmap, bottom-left to top-right.
	// Y is flipped because the bitmap's Y grows down.
	x0, y0 := ScreenWidth/10, ScreenHeight-ScreenHeight/10
	x1, y1 := ScreenWidth-ScreenWidth/10, ScreenHeight/10

	pix := make([]byte, 4*ScreenWidth*ScreenHeight)
	for _, pt := range LinePoints(x0, y0, x1, y1) {
		i := 4 * (pt.Y*ScreenWidth + pt.X)
		pix[i] = 255
		pix[i+1] = 255
		pix[i+2] = 255
		pix[i+3] = 255
	}
	g.img.WritePixels(pix)
	return g
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyR) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	screen.DrawImage(g.img, nil)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func main() {
	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("Bresenham Line")
	if err := ebiten.RunGame(NewGame()); err != nil {
		panic(err)
	}
}
