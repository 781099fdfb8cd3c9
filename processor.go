package favicon

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"slices"

	"github.com/disintegration/imaging"

	"github.com/monomark/favicon/ico"
)

// Output file names that do not depend on the configured sizes.
const (
	icoFile     = "favicon.ico"
	touchFile   = "apple-touch-icon.png"
	previewFile = "preview.png"
)

// touchIconSize is the resolution Apple devices request for home
// screen icons.
const touchIconSize = 180

// An Asset describes one generated file.
type Asset struct {
	Name   string // file name inside the output directory
	Width  int
	Height int
	Bytes  int // encoded byte length
}

// Processor bundles the settings of one generation run.
type Processor struct {
	Background color.NRGBA
	Foreground color.NRGBA
	Sizes      []int // square PNG resolutions to emit
	OutDir     string
	TouchIcon  bool // also emit the 180px apple touch icon
	Preview    bool // also emit a labeled contact sheet of the results
}

// NewProcessor returns a processor preconfigured with the standard
// favicon set: 32, 192 and 512 pixel PNGs, the legacy icon container
// and the apple touch icon, written to the images directory.
func NewProcessor() *Processor {
	return &Processor{
		Background: Background,
		Foreground: Foreground,
		Sizes:      []int{32, 192, 512},
		OutDir:     "images",
		TouchIcon:  true,
	}
}

// Process renders and writes the complete asset set, creating the
// output directory first when it does not exist. Assets are produced
// strictly one after another, in ascending resolution order, and the
// returned list mirrors that order. When Process returns an error the
// directory may already hold a partial set.
func (p *Processor) Process() ([]Asset, error) {
	if len(p.Sizes) == 0 {
		return nil, errors.New("no output sizes configured")
	}
	sizes := slices.Clone(p.Sizes)
	slices.Sort(sizes)
	sizes = slices.Compact(sizes)
	if sizes[0] < 1 {
		return nil, fmt.Errorf("invalid output size %d", sizes[0])
	}

	if err := os.MkdirAll(p.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating output directory: %w", err)
	}

	var (
		assets   []Asset
		smallest []byte  // encoded bytes of the smallest PNG, reused for the icon container
		master   *Canvas // largest rendering, source for the derived assets
		tiles    []PreviewTile
	)
	for _, size := range sizes {
		c := Render(size, p.Background, p.Foreground)

		var buf bytes.Buffer
		if err := c.EncodePNG(&buf); err != nil {
			return nil, fmt.Errorf("error encoding %dpx PNG: %w", size, err)
		}
		name := fmt.Sprintf("favicon-%dx%d.png", size, size)
		asset, err := p.writeAsset(name, size, size, buf.Bytes())
		if err != nil {
			return nil, err
		}
		assets = append(assets, asset)

		if smallest == nil {
			smallest = buf.Bytes()
		}
		master = c
		if p.Preview {
			tiles = append(tiles, PreviewTile{Label: name, Image: c})
		}
	}

	var icoBuf bytes.Buffer
	if err := ico.Encode(&icoBuf, []ico.Entry{{Size: sizes[0], Data: smallest}}); err != nil {
		return nil, fmt.Errorf("error encoding icon container: %w", err)
	}
	asset, err := p.writeAsset(icoFile, sizes[0], sizes[0], icoBuf.Bytes())
	if err != nil {
		return nil, err
	}
	assets = append(assets, asset)

	if p.TouchIcon {
		touch := FromImage(imaging.Resize(master, touchIconSize, touchIconSize, imaging.Lanczos))

		var buf bytes.Buffer
		if err := touch.EncodePNG(&buf); err != nil {
			return nil, fmt.Errorf("error encoding touch icon: %w", err)
		}
		asset, err := p.writeAsset(touchFile, touchIconSize, touchIconSize, buf.Bytes())
		if err != nil {
			return nil, err
		}
		assets = append(assets, asset)

		if p.Preview {
			tiles = append(tiles, PreviewTile{Label: touchFile, Image: touch})
		}
	}

	if p.Preview {
		sheet := PreviewSheet(tiles)

		var buf bytes.Buffer
		if err := png.Encode(&buf, sheet); err != nil {
			return nil, fmt.Errorf("error encoding preview sheet: %w", err)
		}
		b := sheet.Bounds()
		asset, err := p.writeAsset(previewFile, b.Dx(), b.Dy(), buf.Bytes())
		if err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}

	return assets, nil
}

// writeAsset stores one encoded file in the output directory and
// returns its summary entry.
func (p *Processor) writeAsset(name string, w, h int, data []byte) (Asset, error) {
	if err := os.WriteFile(filepath.Join(p.OutDir, name), data, 0644); err != nil {
		return Asset{}, fmt.Errorf("error writing %s: %w", name, err)
	}
	return Asset{Name: name, Width: w, Height: h, Bytes: len(data)}, nil
}
