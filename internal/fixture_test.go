package internal

import (
	"embed"
	"log"
	"math"
	"strconv"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures into grids. This is not a full (or even
// correct) svg renderer. It reads the size of the root element, then marks
// every pixel covered by a <rect> as solid. Anything else in the file is
// ignored. If anything goes wrong, it panics.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) BoolGrid {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, false)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	if rootEl.Name != "svg" {
		log.Fatalf("Root of fixture %q is not an svg element", name)
	}

	grid := NewBoolGrid(intAttribute(rootEl, "width"), intAttribute(rootEl, "height"))
	rects := rootEl.FindAll("rect")
	if len(rects) == 0 {
		log.Fatalf("No rects found in fixture %q", name)
	}
	for _, rect := range rects {
		grid.Fill(
			intAttribute(rect, "x"),
			intAttribute(rect, "y"),
			intAttribute(rect, "width"),
			intAttribute(rect, "height"),
		)
	}
	return grid
}

func intAttribute(el *svgparser.Element, name string) int {
	value, ok := el.Attributes[name]
	if !ok {
		log.Fatalf("Missing %s attribute on <%s>", name, el.Name)
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Fatalf("Invalid %s value %q: %v", name, value, err)
	}
	return int(math.Round(f))
}

// Some ad hoc fixtures

// Square of solid pixels with its top left corner at (x, y)
func SquareGrid(width, height, x, y, side int) BoolGrid {
	grid := NewBoolGrid(width, height)
	grid.Fill(x, y, side, side)
	return grid
}

func Disc(radius float64) BoolGrid {
	size := int(2*radius) + 4
	center := float64(size) / 2
	grid := NewBoolGrid(size, size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - center
			dy := float64(y) + 0.5 - center
			grid[y][x] = dx*dx+dy*dy <= radius*radius
		}
	}
	return grid
}

// A closed loop of n segments around a circle
func LoopSegments(n int, centerX, centerY, radius float32) []Segment {
	points := make([]Point, n)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points[i] = Point{
			centerX + radius*float32(math.Cos(angle)),
			centerY + radius*float32(math.Sin(angle)),
		}
	}
	segments := make([]Segment, n)
	for i := range segments {
		segments[i] = Segment{points[i], points[(i+1)%n]}
	}
	return segments
}

// An open path of n segments along a sine wave
func WaveChain(n int, amplitude, wavelength float32) Chain {
	chain := make(Chain, n+1)
	for i := range chain {
		x := float32(i) * 0.5
		chain[i] = Point{x, amplitude * float32(math.Sin(2*math.Pi*float64(x/wavelength)))}
	}
	return chain
}

// An archimedean spiral, which has no straight runs at all
func SpiralChain(n int) Chain {
	chain := make(Chain, n)
	for i := range chain {
		angle := float64(i) * 0.15
		r := 1 + 0.4*angle
		chain[i] = Point{float32(r * math.Cos(angle)), float32(r * math.Sin(angle))}
	}
	return chain
}
