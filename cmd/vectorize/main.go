package main

import (
	"fmt"
	"log"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/vectorize"
	"github.com/osuushi/vectorize/internal"
	"github.com/osuushi/vectorize/internal/dbg"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Demo of vectorization. Traces a black and white image and plots the
// simplified chains in the terminal, one letter per chain. Optionally renders
// the chains over the image's solid pixels as a PNG.
var (
	app          = kingpin.New("vectorize", "Trace the solid regions of a black and white image as polylines.")
	tolerance    = app.Flag("tolerance", "Largest distance in pixels a dropped point may lie from the simplified chain.").Short('t').Default("1.0").Float64()
	consoleWidth = app.Flag("width", "Width of the terminal plot in characters.").Short('w').Default("80").Int()
	pngPath      = app.Flag("png", "Also render the chains to this PNG file.").String()
	scale        = app.Flag("scale", "Pixels per image pixel in the PNG rendering.").Default("4").Float64()
	preview      = app.Flag("imgcat", "Show the PNG rendering inline (iTerm only).").Bool()
	noColor      = app.Flag("no-color", "Disable colored output.").Bool()
	imagePath    = app.Arg("image", "Image to trace (PNG, JPEG, GIF, BMP, TIFF or WebP).").Required().ExistingFile()
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("vectorize: ")
	kingpin.MustParse(app.Parse(os.Args[1:]))
	au := aurora.NewAurora(!*noColor)

	// Load once up front so the plot and the rendering know the image size
	buffer, err := internal.LoadImage(*imagePath)
	if err != nil {
		log.Fatalf("%v", au.Red(err))
	}
	chains, err := vectorize.VectorizeGrid(buffer, float32(*tolerance))
	if err != nil {
		log.Fatalf("%v", au.Red(err))
	}

	fmt.Printf("Traced %d chains (%d points) from %dx%d image\n",
		au.Bold(len(chains)), au.Bold(chains.PointCount()), buffer.Width(), buffer.Height())
	printCanvas(au, chains, buffer)

	path, cleanup, err := renderPath(*pngPath, *preview)
	if err != nil {
		log.Fatalf("%v", au.Red(err))
	}
	defer cleanup()
	if path == "" {
		return
	}
	if err := chains.DrawPNG(path, buffer, *scale); err != nil {
		log.Fatalf("%v", au.Red(err))
	}
	if *preview {
		if err := internal.Preview(path, os.Stdout); err != nil {
			log.Printf("%v", au.Yellow(err))
		}
	}
}

// Where to render the PNG, or "" for no rendering. A preview without --png
// renders to a temporary file, removed by cleanup.
func renderPath(pngPath string, preview bool) (path string, cleanup func(), err error) {
	cleanup = func() {}
	if pngPath != "" || !preview {
		return pngPath, cleanup, nil
	}
	file, err := os.CreateTemp("", "vectorize-*.png")
	if err != nil {
		return "", cleanup, errors.Wrap(err, "creating preview file")
	}
	file.Close()
	path = file.Name()
	return path, func() { os.Remove(path) }, nil
}

func printCanvas(au aurora.Aurora, chains vectorize.ChainList, buffer *vectorize.PixelBuffer) {
	palette := []func(interface{}) aurora.Value{au.Cyan, au.Yellow, au.Green, au.Magenta, au.Red, au.Blue}
	paint := func(chainIndex int, glyph byte) string {
		return palette[chainIndex%len(palette)](string(glyph)).String()
	}

	canvas := internal.NewCanvas(chains, buffer.Width(), buffer.Height(), *consoleWidth)
	fmt.Println()
	for _, line := range canvas.Lines(paint) {
		fmt.Println(line)
	}
	fmt.Println()

	// Legend
	for i, chain := range chains {
		closed := ""
		if chain.IsClosed() {
			closed = " (closed)"
		}
		fmt.Printf("%s %s: %d points%s\n",
			paint(i, internal.Glyph(i)), dbg.ChainName(i), len(chain), closed)
	}
}
