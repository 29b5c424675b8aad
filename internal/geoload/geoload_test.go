package geoload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const collection = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {"name": "square"},
      "geometry": {"type": "Polygon", "coordinates": [[[0,0],[1,0],[1,1],[0,1],[0,0]]]}
    },
    {
      "type": "Feature",
      "properties": {},
      "geometry": {"type": "MultiPolygon", "coordinates": [
        [[[10,10],[11,10],[11,11],[10,10]]],
        [[[20,20],[22,20],[22,22],[20,20]]]
      ]}
    },
    {
      "type": "Feature",
      "properties": {},
      "geometry": {"type": "Point", "coordinates": [5,5]}
    }
  ]
}`

type nopLogger struct{ warnings int }

func (*nopLogger) Info(string, ...any) {}

func (l *nopLogger) Warn(string, ...any) { l.warnings++ }

func TestReadFeatureCollection(t *testing.T) {
	res, err := ReadFeatureCollection(strings.NewReader(collection))
	require.NoError(t, err)
	require.Len(t, res.Polygons, 3)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{1, 1}}, res.Polygons[0].Bound())
	assert.Equal(t, orb.Bound{Min: orb.Point{20, 20}, Max: orb.Point{22, 22}}, res.Polygons[2].Bound())
}

func TestReadFeatureCollectionInvalid(t *testing.T) {
	_, err := ReadFeatureCollection(strings.NewReader("{not json"))
	assert.Error(t, err)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.geojson"), []byte(collection), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.geojson"), []byte(collection), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.geojson"), []byte("nope"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.json"), []byte(collection), 0o644))

	log := &nopLogger{}
	res, err := LoadDir(dir, log)
	require.NoError(t, err)
	assert.Len(t, res.Polygons, 6)
	assert.Equal(t, 2, res.Skipped)
	assert.Equal(t, 1, log.warnings)
}
