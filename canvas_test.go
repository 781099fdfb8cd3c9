package favicon

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

var _ image.Image = (*Canvas)(nil)

func TestCanvas_NewShouldFillTheBackground(t *testing.T) {
	c := NewCanvas(4, Background)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := c.NRGBAAt(x, y); got != Background {
				t.Fatalf("pixel (%d,%d): expected background %v, got %v", x, y, Background, got)
			}
		}
	}
}

func TestCanvas_SetPixelShouldIgnoreOutOfBoundsCoordinates(t *testing.T) {
	c := NewCanvas(4, Background)

	for _, pt := range []image.Point{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {100, 100}} {
		c.SetPixel(pt.X, pt.Y, Foreground)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := c.NRGBAAt(x, y); got != Background {
				t.Fatalf("out of bounds write leaked into pixel (%d,%d)", x, y)
			}
		}
	}
}

func TestCanvas_ShouldBehaveAsAnImage(t *testing.T) {
	assert := assert.New(t)

	c := NewCanvas(8, Background)
	c.SetPixel(3, 5, Foreground)

	assert.Equal(image.Rect(0, 0, 8, 8), c.Bounds())
	assert.Equal(color.NRGBAModel, c.ColorModel())
	assert.Equal(Foreground, c.At(3, 5).(color.NRGBA))
	assert.Equal(Background, c.At(0, 0).(color.NRGBA))
	assert.Equal(color.NRGBA{}, c.NRGBAAt(-1, 20))
}

func TestCanvas_FromImageShouldCopyNRGBAPixels(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 50), G: uint8(y * 50), B: 0x10, A: 0xff})
		}
	}

	c := FromImage(src)
	if c.Size() != 3 {
		t.Fatalf("expected a 3px canvas, got %d", c.Size())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			want := src.NRGBAAt(x, y)
			if got := c.NRGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d): expected %v, got %v", x, y, want, got)
			}
		}
	}
}

func TestCanvas_FromImageShouldConvertForeignColorModels(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, color.NRGBA{R: 0x2e, G: 0x4e, B: 0x8a, A: 0xff})
	src.Set(1, 1, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})

	c := FromImage(src)
	if got := c.NRGBAAt(0, 0); got != (color.NRGBA{R: 0x2e, G: 0x4e, B: 0x8a, A: 0xff}) {
		t.Errorf("expected the indigo pixel to survive the conversion, got %v", got)
	}
	if got := c.NRGBAAt(1, 1); got != (color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Errorf("expected the white pixel to survive the conversion, got %v", got)
	}
}

func TestCanvas_FromImageShouldUseTheShorterEdge(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 5, 3))

	c := FromImage(src)
	if c.Size() != 3 {
		t.Errorf("expected a 3px canvas from a 5x3 source, got %d", c.Size())
	}
}
