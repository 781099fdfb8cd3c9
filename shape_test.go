package favicon

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShape_ArcPointsShouldIncludeBothEndpoints(t *testing.T) {
	assert := assert.New(t)

	pts := slices.Collect(ArcPoints(390, 196, 96, 88, -90, 90, 48))
	assert.Len(pts, 49)

	// -90 degrees is straight up, +90 straight down, 0 the right apex.
	assert.InDelta(390.0, pts[0].X, 1e-9)
	assert.InDelta(108.0, pts[0].Y, 1e-9)
	assert.InDelta(486.0, pts[24].X, 1e-9)
	assert.InDelta(196.0, pts[24].Y, 1e-9)
	assert.InDelta(390.0, pts[48].X, 1e-9)
	assert.InDelta(284.0, pts[48].Y, 1e-9)
}

func TestShape_ArcPointsShouldSupportEllipticalRadii(t *testing.T) {
	assert := assert.New(t)

	pts := slices.Collect(ArcPoints(0, 0, 100, 50, 0, 180, 2))
	assert.Len(pts, 3)
	assert.InDelta(100.0, pts[0].X, 1e-9)
	assert.InDelta(0.0, pts[0].Y, 1e-9)
	assert.InDelta(0.0, pts[1].X, 1e-9)
	assert.InDelta(50.0, pts[1].Y, 1e-9)
	assert.InDelta(-100.0, pts[2].X, 1e-9)
}

func TestShape_ArcPointsShouldEnforceMinimumSteps(t *testing.T) {
	for _, steps := range []int{-3, 0, 1} {
		pts := slices.Collect(ArcPoints(0, 0, 10, 10, 0, 90, steps))
		if len(pts) != 3 {
			t.Errorf("steps %d: expected the two segment floor (3 points), got %d", steps, len(pts))
		}
	}
}

func TestShape_ArcPointsShouldBeRestartable(t *testing.T) {
	seq := ArcPoints(100, 100, 50, 50, 0, 180, 12)

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !slices.Equal(first, second) {
		t.Errorf("ranging twice over the same arc should replay identical points")
	}
}

func TestShape_ArcPointsShouldStopWhenConsumerStops(t *testing.T) {
	var collected int
	for range ArcPoints(0, 0, 1, 1, 0, 360, 100) {
		collected++
		if collected == 5 {
			break
		}
	}
	if collected != 5 {
		t.Errorf("expected iteration to stop after 5 points, got %d", collected)
	}
}

func TestShape_PolygonScaleShouldNotTouchTheOriginal(t *testing.T) {
	assert := assert.New(t)

	poly := Polygon{{X: 10, Y: 20}, {X: 30, Y: 40}, {X: 50, Y: 0}}
	scaled := poly.Scale(0.5)

	assert.Equal(Polygon{{X: 5, Y: 10}, {X: 15, Y: 20}, {X: 25, Y: 0}}, scaled)
	assert.Equal(Polygon{{X: 10, Y: 20}, {X: 30, Y: 40}, {X: 50, Y: 0}}, poly)
}

func TestShape_PolygonBounds(t *testing.T) {
	poly := Polygon{{X: 3, Y: 9}, {X: -2, Y: 4}, {X: 7, Y: 1}}
	b := poly.Bounds()

	if b.Min.X != -2 || b.Min.Y != 1 || b.Max.X != 7 || b.Max.Y != 9 {
		t.Errorf("unexpected bounding box: %+v", b)
	}
}
