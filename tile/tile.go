package tile

// Node is a decoded graph vertex: absolute coordinates and the range of
// edge records it owns in its tile's edge array.
type Node struct {
	Lat, Lon  float64
	EdgeIndex uint32
	EdgeCount uint32
}

// Tile is a single decoded level-2 tile: the node array (parsed eagerly)
// plus the raw decompressed buffer (retained for on-demand edge decode).
type Tile struct {
	ID uint32

	raw []byte

	BaseLat, BaseLon float64
	NodeCount        uint32
	EdgeCount        uint32

	Nodes []Node

	edgesOffset uint32
}

// Parse decodes a decompressed tile buffer (as produced by Encode, or by
// gzip-decompressing an on-disk .gph.gz file) without going through a
// Store. Most callers should use Store.Load instead; Parse exists for
// tests and tools that already hold raw tile bytes in memory.
func Parse(id uint32, raw []byte) (*Tile, error) {
	return parseTile(id, raw)
}

// parseTile decodes the header and node array of a decompressed tile
// buffer. It does not decode any edges; those are decoded lazily via
// GetEdgeEnd/GetEdgeDetails against the retained raw buffer.
func parseTile(id uint32, raw []byte) (*Tile, error) {
	if len(raw) < HeaderSize {
		return nil, ErrTileTooSmall
	}

	t := &Tile{
		ID:  id,
		raw: raw,
	}

	t.BaseLon = float64(readFloat32(raw, headerBaseLonOffset))
	t.BaseLat = float64(readFloat32(raw, headerBaseLatOffset))

	counts := readU64(raw, headerCountsOffset)
	t.NodeCount = uint32(bits(counts, 0, 21))
	t.EdgeCount = uint32(bits(counts, 21, 21))

	transWord := readU32(raw, headerTransitionsOffset)
	transCount := uint32(bits(uint64(transWord), 0, 22))

	nodesOffset := uint32(HeaderSize)
	transitionsOffset := nodesOffset + t.NodeCount*NodeSize
	t.edgesOffset = transitionsOffset + transCount*transitionSize

	nodesEnd := int(nodesOffset) + int(t.NodeCount)*NodeSize
	if nodesEnd > len(raw) {
		return nil, ErrOffsetOutOfRange
	}

	t.Nodes = make([]Node, t.NodeCount)
	for i := uint32(0); i < t.NodeCount; i++ {
		off := int(nodesOffset) + int(i)*NodeSize
		w0 := readU64(raw, off)
		w1 := readU64(raw, off+8)

		latMicro := bits(w0, nodeLatMicroShift, nodeLatMicroWidth)
		latNano := bits(w0, nodeLatNanoShift, nodeLatNanoWidth)
		lonMicro := bits(w0, nodeLonMicroShift, nodeLonMicroWidth)
		lonNano := bits(w0, nodeLonNanoShift, nodeLonNanoWidth)

		t.Nodes[i] = Node{
			Lat:       t.BaseLat + float64(latMicro)*1e-6 + float64(latNano)*1e-7,
			Lon:       t.BaseLon + float64(lonMicro)*1e-6 + float64(lonNano)*1e-7,
			EdgeIndex: uint32(bits(w1, nodeEdgeIndexShift, nodeEdgeIndexWidth)),
			EdgeCount: uint32(bits(w1, nodeEdgeCountShift, nodeEdgeCountWidth)),
		}
	}

	return t, nil
}
