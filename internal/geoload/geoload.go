// Package geoload reads polygons out of GeoJSON feature collections.
package geoload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Logger is the subset of rtree.Logger the loader needs.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}

// Result holds the polygons read from one or more collections.
type Result struct {
	Polygons []orb.Polygon
	// Skipped counts features whose geometry is not a polygon or
	// multipolygon.
	Skipped int
}

// ReadFeatureCollection parses a GeoJSON FeatureCollection. Each Polygon
// feature yields one polygon and each MultiPolygon feature yields one polygon
// per member.
func ReadFeatureCollection(r io.Reader) (Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Result{}, err
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return Result{}, fmt.Errorf("parse feature collection: %w", err)
	}

	var res Result
	for _, f := range fc.Features {
		switch g := f.Geometry.(type) {
		case orb.Polygon:
			if len(g) > 0 {
				res.Polygons = append(res.Polygons, g)
			}
		case orb.MultiPolygon:
			for _, p := range g {
				if len(p) > 0 {
					res.Polygons = append(res.Polygons, p)
				}
			}
		default:
			res.Skipped++
		}
	}
	return res, nil
}

// LoadDir reads every *.geojson file in dir. Files that cannot be read or
// parsed are logged and skipped.
func LoadDir(dir string, log Logger) (Result, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.geojson"))
	if err != nil {
		return Result{}, err
	}
	log.Info("loading geojson", "dir", dir, "files", len(files))

	var all Result
	for _, file := range files {
		res, err := loadFile(file)
		if err != nil {
			log.Warn("skipping file", "file", file, "error", err)
			continue
		}
		log.Info("loaded file", "file", filepath.Base(file), "polygons", len(res.Polygons), "skipped", res.Skipped)
		all.Polygons = append(all.Polygons, res.Polygons...)
		all.Skipped += res.Skipped
	}
	return all, nil
}

func loadFile(path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, err
	}
	defer f.Close()
	return ReadFeatureCollection(f)
}
