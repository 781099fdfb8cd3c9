package favicon

import (
	"image"
	"image/color"
)

// Canvas is a square buffer of non premultiplied RGBA pixels, stored as
// four bytes per pixel in row major order. It implements image.Image so
// it plugs straight into the standard image packages.
type Canvas struct {
	size int
	pix  []uint8
}

// NewCanvas returns a size by size canvas filled with bg.
func NewCanvas(size int, bg color.NRGBA) *Canvas {
	c := &Canvas{size: size, pix: make([]uint8, size*size*4)}
	c.Fill(bg)
	return c
}

// FromImage copies src into a new canvas. Canvases are square, so the
// shorter edge of src determines the size; excess rows or columns are
// dropped.
func FromImage(src image.Image) *Canvas {
	b := src.Bounds()
	size := b.Dx()
	if b.Dy() < size {
		size = b.Dy()
	}
	c := &Canvas{size: size, pix: make([]uint8, size*size*4)}

	switch img := src.(type) {
	case *image.NRGBA:
		for y := 0; y < size; y++ {
			o := img.PixOffset(b.Min.X, b.Min.Y+y)
			copy(c.pix[y*size*4:(y+1)*size*4], img.Pix[o:o+size*4])
		}
	default:
		i := 0
		for y := b.Min.Y; y < b.Min.Y+size; y++ {
			for x := b.Min.X; x < b.Min.X+size; x++ {
				col := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
				c.pix[i] = col.R
				c.pix[i+1] = col.G
				c.pix[i+2] = col.B
				c.pix[i+3] = col.A
				i += 4
			}
		}
	}
	return c
}

// Size returns the canvas edge length in pixels.
func (c *Canvas) Size() int {
	return c.size
}

// Pix exposes the underlying pixel storage.
func (c *Canvas) Pix() []uint8 {
	return c.pix
}

// Fill overwrites every pixel with col.
func (c *Canvas) Fill(col color.NRGBA) {
	for i := 0; i < len(c.pix); i += 4 {
		c.pix[i] = col.R
		c.pix[i+1] = col.G
		c.pix[i+2] = col.B
		c.pix[i+3] = col.A
	}
}

// SetPixel writes col at (x, y). Coordinates outside the canvas are
// ignored.
func (c *Canvas) SetPixel(x, y int, col color.NRGBA) {
	if x < 0 || y < 0 || x >= c.size || y >= c.size {
		return
	}
	i := (y*c.size + x) * 4
	c.pix[i] = col.R
	c.pix[i+1] = col.G
	c.pix[i+2] = col.B
	c.pix[i+3] = col.A
}

// NRGBAAt returns the pixel at (x, y), or the zero color when the
// coordinates fall outside the canvas.
func (c *Canvas) NRGBAAt(x, y int) color.NRGBA {
	if x < 0 || y < 0 || x >= c.size || y >= c.size {
		return color.NRGBA{}
	}
	i := (y*c.size + x) * 4
	return color.NRGBA{R: c.pix[i], G: c.pix[i+1], B: c.pix[i+2], A: c.pix[i+3]}
}

// ColorModel implements image.Image.
func (c *Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements image.Image.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.size, c.size)
}

// At implements image.Image.
func (c *Canvas) At(x, y int) color.Color {
	return c.NRGBAAt(x, y)
}
