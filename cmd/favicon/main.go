package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/monomark/favicon"
	"github.com/monomark/favicon/utils"
)

const helpBanner = `
┌─┐┌─┐┬  ┬┬┌─┐┌─┐┌┐┌
├┤ ├─┤└┐┌┘││  │ ││││
└  ┴ ┴ └┘ ┴└─┘└─┘┘└┘

Procedural monogram favicon generator.
    Version: %s

`

// Version indicates the current build version.
var Version string

var (
	// Flags
	outDir    = flag.String("out", "images", "Output directory")
	sizes     = flag.String("sizes", "32,192,512", "Comma separated list of square PNG resolutions")
	bgColor   = flag.String("bg", "#2e4e8a", "Background color (hex)")
	fgColor   = flag.String("fg", "#ffffff", "Letterform color (hex)")
	touchIcon = flag.Bool("touch", true, "Generate the 180px apple touch icon")
	preview   = flag.Bool("preview", false, "Generate a labeled preview sheet of the results")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		_, execName := filepath.Split(os.Args[0])
		fmt.Fprintf(os.Stderr, helpBanner, Version)
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", execName)
		flag.PrintDefaults()
	}
	flag.Parse()

	sizeList, err := parseSizes(*sizes)
	if err != nil {
		log.Fatalf(utils.DecorateText("Invalid -sizes value: %v", utils.ErrorMessage), err)
	}
	bg, err := utils.HexToNRGBA(*bgColor)
	if err != nil {
		log.Fatalf(utils.DecorateText("Invalid -bg value: %v", utils.ErrorMessage), err)
	}
	fg, err := utils.HexToNRGBA(*fgColor)
	if err != nil {
		log.Fatalf(utils.DecorateText("Invalid -fg value: %v", utils.ErrorMessage), err)
	}

	p := favicon.NewProcessor()
	p.Background = bg
	p.Foreground = fg
	p.Sizes = sizeList
	p.OutDir = *outDir
	p.TouchIcon = *touchIcon
	p.Preview = *preview

	start := time.Now()
	assets, err := p.Process()
	if err != nil {
		log.Fatalf(utils.DecorateText("Error generating the favicon assets: %v", utils.ErrorMessage), err)
	}

	printSummary(assets)
	fmt.Printf("\nExecution time: %s\n", decorate(utils.FormatTime(time.Since(start)), utils.SuccessMessage))
}

// printSummary lists every generated file together with its resolution
// and encoded byte size.
func printSummary(assets []favicon.Asset) {
	fmt.Println(decorate("Generated favicon assets:", utils.StatusMessage))
	for _, a := range assets {
		fmt.Printf("  %s (%dx%d) -> %d bytes\n", a.Name, a.Width, a.Height, a.Bytes)
	}
}

// decorate colorizes s only when stdout is attached to a terminal, so
// redirected output stays free of escape sequences.
func decorate(s string, msgType utils.MessageType) string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return s
	}
	return utils.DecorateText(s, msgType)
}

// parseSizes splits the comma separated -sizes value into a resolution list.
func parseSizes(s string) ([]int, error) {
	var sizeList []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		size, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", field)
		}
		if size < 1 || size > 1024 {
			return nil, fmt.Errorf("size %d is outside the supported 1-1024 range", size)
		}
		sizeList = append(sizeList, size)
	}
	if len(sizeList) == 0 {
		return nil, errors.New("no resolutions given")
	}
	return sizeList, nil
}
