/*
Package favicon procedurally renders the "AP" monogram favicon set used
across the project sites. The letterforms are plain polygons laid out on
a fixed 512 unit design grid; every output resolution is produced by
scaling that geometry and rasterizing it with an even-odd scanline fill,
so no font files or vector assets are involved.

The package provides a command line interface for generating the whole
asset set in one run. To check the supported commands type:

	$ favicon --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"log"

		"github.com/monomark/favicon"
	)

	func main() {
		p := favicon.NewProcessor()
		p.OutDir = "images"

		if _, err := p.Process(); err != nil {
			log.Fatalf("Error generating favicon assets: %v", err)
		}
	}

Process writes one PNG per configured resolution, a legacy favicon.ico
wrapping the smallest PNG and optionally an apple touch icon plus a
labeled preview sheet. The PNG files are framed by a purpose built
encoder (fixed filter, single IDAT chunk) so identical settings always
produce byte identical output.
*/
package favicon
