package favicon

import (
	"image/color"
	"slices"

	"github.com/jbeda/geom"
)

// Default monogram palette.
var (
	// Background is the indigo backdrop the letters sit on.
	Background = color.NRGBA{R: 0x2e, G: 0x4e, B: 0x8a, A: 0xff}
	// Foreground is the letterform fill.
	Foreground = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Letterform geometry on the design grid. The "A" is an outline with a
// triangular counter that gets repainted in the background color, plus
// a crossbar laid over it. The "P" is a stem joined to a half ellipse
// bowl, with a smaller half ellipse carving out the counter.
var (
	aOuter = Polygon{
		{X: 130, Y: 404}, {X: 210, Y: 100}, {X: 226, Y: 100}, {X: 306, Y: 404},
		{X: 258, Y: 404}, {X: 232, Y: 302}, {X: 182, Y: 302}, {X: 156, Y: 404},
	}
	aHole = Polygon{{X: 214, Y: 180}, {X: 242, Y: 288}, {X: 190, Y: 288}}
	aBar  = geom.Rect{Min: geom.Coord{X: 180, Y: 250}, Max: geom.Coord{X: 252, Y: 292}}

	pOuter Polygon
	pHole  Polygon
)

func init() {
	pOuter = Polygon{{X: 316, Y: 404}, {X: 316, Y: 116}, {X: 372, Y: 116}}
	pOuter = slices.AppendSeq(pOuter, ArcPoints(390, 196, 96, 88, -90, 90, 48))
	pOuter = append(pOuter,
		geom.Coord{X: 362, Y: 284}, geom.Coord{X: 362, Y: 404}, geom.Coord{X: 316, Y: 404})

	pHole = Polygon{{X: 336, Y: 164}, {X: 372, Y: 164}}
	pHole = slices.AppendSeq(pHole, ArcPoints(384, 194, 70, 62, -90, 90, 40))
	pHole = append(pHole, geom.Coord{X: 372, Y: 226}, geom.Coord{X: 336, Y: 226})
}
