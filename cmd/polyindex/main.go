// Command polyindex builds an R-tree over the polygons in a directory of
// GeoJSON files and reports the shape of the result.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
