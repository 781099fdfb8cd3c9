package favicon

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Layout of the preview sheet.
const (
	previewCell    = 160 // edge of the square slot every tile is scaled into
	previewPad     = 16  // gutter around and between tiles
	previewCaption = 20  // strip under each tile holding its label
)

// Preview sheet colors.
var (
	sheetBackground = color.NRGBA{R: 0xf2, G: 0xf2, B: 0xf2, A: 0xff}
	checkerLight    = color.NRGBA{R: 0xe6, G: 0xe6, B: 0xe6, A: 0xff}
	checkerDark     = color.NRGBA{R: 0xc9, G: 0xc9, B: 0xc9, A: 0xff}
	captionColor    = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
)

// A PreviewTile pairs a rendered asset with its caption.
type PreviewTile struct {
	Label string
	Image image.Image
}

// PreviewSheet composes the given tiles into one horizontal contact
// sheet. Every tile is scaled into a fixed square slot drawn over a
// transparency checkerboard and labeled underneath. Scaling up uses
// nearest neighbor so small icons keep their hard pixel edges; scaling
// down uses a Catmull-Rom kernel.
func PreviewSheet(tiles []PreviewTile) *image.NRGBA {
	w := previewPad + len(tiles)*(previewCell+previewPad)
	h := previewPad + previewCell + previewCaption + previewPad
	sheet := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(sheet, sheet.Bounds(), image.NewUniform(sheetBackground), image.Point{}, xdraw.Src)

	for i, tile := range tiles {
		slot := image.Rect(0, 0, previewCell, previewCell).
			Add(image.Pt(previewPad+i*(previewCell+previewPad), previewPad))
		drawCheckerboard(sheet, slot)

		sb := tile.Image.Bounds()
		var scaler xdraw.Scaler = xdraw.CatmullRom
		if sb.Dx() < previewCell {
			scaler = xdraw.NearestNeighbor
		}
		scaler.Scale(sheet, slot, tile.Image, sb, xdraw.Over, nil)

		d := font.Drawer{
			Dst:  sheet,
			Src:  image.NewUniform(captionColor),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(slot.Min.X, slot.Max.Y+previewCaption-6),
		}
		d.DrawString(tile.Label)
	}
	return sheet
}

// drawCheckerboard fills r with the usual transparency checker so
// tiles rendered with a translucent background stay readable.
func drawCheckerboard(dst *image.NRGBA, r image.Rectangle) {
	const square = 8
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			col := checkerLight
			if ((x-r.Min.X)/square+(y-r.Min.Y)/square)%2 == 1 {
				col = checkerDark
			}
			dst.SetNRGBA(x, y, col)
		}
	}
}
