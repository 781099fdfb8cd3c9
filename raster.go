package favicon

import (
	"image/color"
	"math"

	"github.com/jbeda/geom"

	"github.com/monomark/favicon/utils"
)

// FillPolygon paints every pixel whose center lies inside poly using
// the even-odd rule. Only the clamped bounding box of the polygon is
// scanned, so geometry entirely outside the canvas costs nothing and
// paints nothing.
func (c *Canvas) FillPolygon(poly Polygon, col color.NRGBA) {
	if len(poly) == 0 {
		return
	}
	b := poly.Bounds()
	x0 := utils.Clamp(int(math.Floor(b.Min.X)), 0, c.size)
	x1 := utils.Clamp(int(math.Ceil(b.Max.X)), 0, c.size)
	y0 := utils.Clamp(int(math.Floor(b.Min.Y)), 0, c.size)
	y1 := utils.Clamp(int(math.Ceil(b.Max.Y)), 0, c.size)
	if x1 <= x0 || y1 <= y0 {
		return
	}

	for y := y0; y < y1; y++ {
		cy := float64(y) + 0.5
		for x := x0; x < x1; x++ {
			if pointInPolygon(float64(x)+0.5, cy, poly) {
				c.SetPixel(x, y, col)
			}
		}
	}
}

// FillRect paints the axis aligned rectangle r. A rectangle that is
// degenerate along an axis is widened to a single pixel run so thin
// strokes stay visible at small output sizes. The widening happens
// after clamping, so a rectangle entirely outside the canvas has to be
// rejected up front or it would bleed onto the nearest edge.
func (c *Canvas) FillRect(r geom.Rect, col color.NRGBA) {
	size := float64(c.size)
	if r.Max.X < 0 || r.Min.X > size || r.Max.Y < 0 || r.Min.Y > size {
		return
	}
	x0 := utils.Clamp(int(math.Floor(r.Min.X)), 0, c.size)
	x1 := utils.Clamp(int(math.Ceil(r.Max.X)), 0, c.size)
	y0 := utils.Clamp(int(math.Floor(r.Min.Y)), 0, c.size)
	y1 := utils.Clamp(int(math.Ceil(r.Max.Y)), 0, c.size)
	if x1 <= x0 {
		x1 = utils.Clamp(x0+1, 0, c.size)
	}
	if y1 <= y0 {
		y1 = utils.Clamp(y0+1, 0, c.size)
	}

	for y := y0; y < y1; y++ {
		i := (y*c.size + x0) * 4
		for x := x0; x < x1; x++ {
			c.pix[i] = col.R
			c.pix[i+1] = col.G
			c.pix[i+2] = col.B
			c.pix[i+3] = col.A
			i += 4
		}
	}
}

// pointInPolygon reports whether (x, y) lies inside poly under the
// even-odd rule, counting crossings of a ray cast toward positive x.
// The half open vertex test keeps vertices and horizontal edges from
// being counted twice, and the tiny divisor offset keeps the division
// safe for nearly horizontal edges.
func pointInPolygon(x, y float64, poly Polygon) bool {
	inside := false
	n := len(poly)
	for i := 0; i < n; i++ {
		p1 := poly[i]
		p2 := poly[(i+1)%n]
		if (p1.Y > y) != (p2.Y > y) {
			xi := (p2.X-p1.X)*(y-p1.Y)/(p2.Y-p1.Y+1e-12) + p1.X
			if x < xi {
				inside = !inside
			}
		}
	}
	return inside
}
