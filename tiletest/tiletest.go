// Package tiletest builds synthetic, gzip-compressed tile files on disk for
// use as fixtures in other packages' tests (search, locate, summary,
// router). It is a thin wrapper over tile.Encode and tile.Store's on-disk
// layout, kept separate from _test.go files so those other packages can
// import it.
package tiletest

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"

	"github.com/juhonkan/cycloroute/tile"
)

// Write encodes a tile from baseLat/baseLon + node/edge specs, gzips it,
// and writes it to dir at the path tile.Store expects for id.
func Write(dir string, id uint32, baseLat, baseLon float64, nodes []tile.NodeSpec, edges []tile.EdgeSpec) error {
	raw := tile.Encode(baseLat, baseLon, nodes, edges)

	store := tile.NewStore(dir)
	path := store.Path(id)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(raw); err != nil {
		return err
	}
	if err := gz.Close(); err != nil {
		return err
	}

	return os.WriteFile(path, buf.Bytes(), 0o644)
}
