// Package render draws accident locations on a state-level base map and
// encodes the result as PNG.
package render

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/fogleman/gg"
)

// Point is a WGS-84 coordinate to draw on the map.
type Point struct {
	Lat float64
	Lon float64
}

// Options control the output image.
type Options struct {
	Width       int
	Height      int
	PointRadius float64
}

// DefaultOptions returns the standard map dimensions.
func DefaultOptions() Options {
	return Options{Width: 1024, Height: 768, PointRadius: 2.5}
}

const (
	margin = 48.0

	// padFraction widens the bounding box so points never sit on the frame.
	padFraction = 0.05

	// minSpan keeps the projection finite when all points share a
	// coordinate, e.g. a single accident.
	minSpan = 0.5
)

// StateMap renders a base map scaled to the bounding box of the points
// (frame plus a degree graticule), overlays each point as a small filled
// circle, and writes the PNG encoding to w. All points must be finite; the
// caller is responsible for scrubbing sentinel coordinates first.
func StateMap(w io.Writer, points []Point, opts Options) error {
	if len(points) == 0 {
		return errors.New("no points to render")
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("invalid map dimensions %dx%d", opts.Width, opts.Height)
	}

	minLat, maxLat := points[0].Lat, points[0].Lat
	minLon, maxLon := points[0].Lon, points[0].Lon
	for _, p := range points {
		if math.IsNaN(p.Lat) || math.IsNaN(p.Lon) || math.IsInf(p.Lat, 0) || math.IsInf(p.Lon, 0) {
			return fmt.Errorf("non-finite coordinate (%v, %v)", p.Lat, p.Lon)
		}
		minLat = math.Min(minLat, p.Lat)
		maxLat = math.Max(maxLat, p.Lat)
		minLon = math.Min(minLon, p.Lon)
		maxLon = math.Max(maxLon, p.Lon)
	}
	minLat, maxLat = pad(minLat, maxLat)
	minLon, maxLon = pad(minLon, maxLon)

	width := float64(opts.Width)
	height := float64(opts.Height)
	project := func(p Point) (float64, float64) {
		x := margin + (p.Lon-minLon)/(maxLon-minLon)*(width-2*margin)
		// Image y grows downward, latitude grows upward.
		y := height - margin - (p.Lat-minLat)/(maxLat-minLat)*(height-2*margin)
		return x, y
	}

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	drawGraticule(dc, project, minLat, maxLat, minLon, maxLon, width, height)
	drawFrame(dc, width, height)
	drawPoints(dc, project, points, opts.PointRadius)

	return dc.EncodePNG(w)
}

// pad widens a coordinate range by padFraction on each side, enforcing a
// minimum span for degenerate ranges.
func pad(lo, hi float64) (float64, float64) {
	span := hi - lo
	if span < minSpan {
		center := (lo + hi) / 2
		lo = center - minSpan/2
		hi = center + minSpan/2
		span = minSpan
	}
	return lo - span*padFraction, hi + span*padFraction
}

// drawGraticule strokes labeled latitude/longitude lines at a step chosen
// to keep the grid readable at any zoom.
func drawGraticule(dc *gg.Context, project func(Point) (float64, float64), minLat, maxLat, minLon, maxLon, width, height float64) {
	dc.SetRGB(0.82, 0.85, 0.88)
	dc.SetLineWidth(1)

	latStep := graticuleStep(maxLat - minLat)
	lonStep := graticuleStep(maxLon - minLon)

	for lat := math.Ceil(minLat/latStep) * latStep; lat <= maxLat; lat += latStep {
		_, y := project(Point{Lat: lat, Lon: minLon})
		dc.DrawLine(margin, y, width-margin, y)
		dc.Stroke()
	}
	for lon := math.Ceil(minLon/lonStep) * lonStep; lon <= maxLon; lon += lonStep {
		x, _ := project(Point{Lat: minLat, Lon: lon})
		dc.DrawLine(x, margin, x, height-margin)
		dc.Stroke()
	}

	dc.SetRGB(0.35, 0.35, 0.35)
	for lat := math.Ceil(minLat/latStep) * latStep; lat <= maxLat; lat += latStep {
		_, y := project(Point{Lat: lat, Lon: minLon})
		dc.DrawStringAnchored(formatDegrees(lat, latStep), margin-6, y, 1, 0.4)
	}
	for lon := math.Ceil(minLon/lonStep) * lonStep; lon <= maxLon; lon += lonStep {
		x, _ := project(Point{Lat: minLat, Lon: lon})
		dc.DrawStringAnchored(formatDegrees(lon, lonStep), x, height-margin+12, 0.5, 0.5)
	}
}

// graticuleStep picks a degree interval that yields at most roughly ten
// grid lines over the given span.
func graticuleStep(span float64) float64 {
	for _, step := range []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10} {
		if span/step <= 10 {
			return step
		}
	}
	return 20
}

func formatDegrees(v, step float64) string {
	if step < 1 {
		return fmt.Sprintf("%.2f", v)
	}
	return fmt.Sprintf("%.0f", v)
}

func drawFrame(dc *gg.Context, width, height float64) {
	dc.SetRGB(0.2, 0.2, 0.2)
	dc.SetLineWidth(1.5)
	dc.DrawRectangle(margin, margin, width-2*margin, height-2*margin)
	dc.Stroke()
}

func drawPoints(dc *gg.Context, project func(Point) (float64, float64), points []Point, radius float64) {
	if radius <= 0 {
		radius = DefaultOptions().PointRadius
	}
	dc.SetRGBA(0.7, 0.1, 0.1, 0.75)
	for _, p := range points {
		x, y := project(p)
		dc.DrawCircle(x, y, radius)
		dc.Fill()
	}
}
