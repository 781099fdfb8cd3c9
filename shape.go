package favicon

import (
	"iter"
	"math"

	"github.com/jbeda/geom"
)

// DesignSize is the edge length of the abstract grid the letterform
// geometry is authored on. Rendering at any output resolution scales
// the geometry by size/DesignSize.
const DesignSize = 512

// Polygon is a closed outline given as an ordered vertex list on the
// design grid. The closing edge from the last vertex back to the first
// is implicit; winding direction does not matter to the even-odd fill.
type Polygon []geom.Coord

// Scale returns a copy of the polygon with every vertex multiplied by s.
func (p Polygon) Scale(s float64) Polygon {
	scaled := make(Polygon, len(p))
	for i, pt := range p {
		scaled[i] = pt.Times(s)
	}
	return scaled
}

// Bounds returns the axis aligned bounding box of the polygon.
func (p Polygon) Bounds() geom.Rect {
	r := geom.Rect{Min: p[0], Max: p[0]}
	for _, pt := range p[1:] {
		r.ExpandToContainCoord(pt)
	}
	return r
}

// scaleRect multiplies both corners of r by s.
func scaleRect(r geom.Rect, s float64) geom.Rect {
	return geom.Rect{Min: r.Min.Times(s), Max: r.Max.Times(s)}
}

// ArcPoints returns the vertices of an elliptical arc approximated by
// steps straight segments. The arc is centered on (cx, cy) with radii
// rx and ry, sweeping from startDeg to endDeg; both endpoints are
// included, so the sequence yields steps+1 points. Fewer than two
// segments would degenerate into a chord, so steps is raised to two if
// needed.
//
// The returned sequence is restartable: each range over it replays the
// same points.
func ArcPoints(cx, cy, rx, ry, startDeg, endDeg float64, steps int) iter.Seq[geom.Coord] {
	if steps < 2 {
		steps = 2
	}
	start := startDeg * math.Pi / 180
	end := endDeg * math.Pi / 180

	return func(yield func(geom.Coord) bool) {
		for i := 0; i <= steps; i++ {
			t := start + (end-start)*float64(i)/float64(steps)
			pt := geom.Coord{X: cx + math.Cos(t)*rx, Y: cy + math.Sin(t)*ry}
			if !yield(pt) {
				return
			}
		}
	}
}
