package tile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
)

// DefaultCacheCapacity is the default FIFO tile cache ceiling.
const DefaultCacheCapacity = 200

// Store is the sole owner of decoded tile buffers. It loads
// gzip-compressed `.gph.gz` tile files from a directory tree, caches them
// up to a fixed capacity, and evicts the oldest tile (FIFO) on overflow.
// The cache persists across loads for the Store's lifetime (a router.Router
// keeps one Store for all its queries). Store is not safe for concurrent
// use.
type Store struct {
	dir      string
	capacity int

	// order is the FIFO queue of resident tile IDs, oldest first.
	order []uint32
	tiles map[uint32]*Tile
}

// Option configures a Store at construction.
type Option func(*Store)

// WithCacheCapacity overrides DefaultCacheCapacity. Values <= 0 are ignored.
func WithCacheCapacity(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.capacity = n
		}
	}
}

// NewStore creates a Store rooted at dir, the directory containing the
// "2/" level-2 tile tree.
func NewStore(dir string, opts ...Option) *Store {
	s := &Store{
		dir:      dir,
		capacity: DefaultCacheCapacity,
		tiles:    make(map[uint32]*Tile),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Path returns the on-disk path for a level-2 tile id:
// <root>/2/<id/1e6:%03d>/<(id/1e3)%1e3:%03d>/<id%1e3:%03d>.gph.gz
func (s *Store) Path(tileID uint32) string {
	a := tileID / 1_000_000
	b := (tileID / 1_000) % 1_000
	c := tileID % 1_000

	return filepath.Join(s.dir, "2", fmt.Sprintf("%03d", a), fmt.Sprintf("%03d", b), fmt.Sprintf("%03d.gph.gz", c))
}

// Load returns the decoded tile for tileID, loading and caching it if
// necessary. ok is false if the file is missing, unreadable, or fails to
// decode (truncated header, out-of-range offsets). Callers treat a missing
// neighbor tile encountered mid-traversal as "skip this edge", but treat a
// failed start/end tile as a fatal error to surface.
func (s *Store) Load(tileID uint32) (*Tile, bool) {
	if t, ok := s.tiles[tileID]; ok {
		return t, true
	}

	raw, err := s.readGzip(s.Path(tileID))
	if err != nil {
		return nil, false
	}

	t, err := parseTile(tileID, raw)
	if err != nil {
		return nil, false
	}

	s.insert(t)

	return t, true
}

func (s *Store) readGzip(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer gz.Close()

	return io.ReadAll(gz)
}

// insert adds t to the cache, evicting the oldest tile first if the cache
// is at capacity.
func (s *Store) insert(t *Tile) {
	if len(s.order) >= s.capacity {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.tiles, oldest)
	}

	s.order = append(s.order, t.ID)
	s.tiles[t.ID] = t
}

// Len reports the number of tiles currently resident in the cache.
func (s *Store) Len() int {
	return len(s.order)
}
