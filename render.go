package favicon

import "image/color"

// Render rasterizes the monogram at size pixels per edge, using bg as
// the backdrop and fg for the letterforms. The result only depends on
// the arguments, so repeated calls produce identical canvases.
//
// Paint order matters: each counter is carved by repainting it in the
// background color, and the A crossbar is laid over the carved
// counter.
func Render(size int, bg, fg color.NRGBA) *Canvas {
	c := NewCanvas(size, bg)
	s := float64(size) / DesignSize

	c.FillPolygon(aOuter.Scale(s), fg)
	c.FillPolygon(aHole.Scale(s), bg)
	c.FillRect(scaleRect(aBar, s), fg)
	c.FillPolygon(pOuter.Scale(s), fg)
	c.FillPolygon(pHole.Scale(s), bg)

	return c
}
