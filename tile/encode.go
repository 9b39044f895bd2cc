package tile

import "math"

// NodeSpec is the unpacked form of a Node record, used by Encode to build
// a raw tile buffer.
type NodeSpec struct {
	Lat, Lon  float64
	EdgeIndex uint32
	EdgeCount uint32
}

// EdgeSpec is the unpacked form of an edge record (EdgeEnd + EdgeDetails
// combined), used by Encode to build a raw tile buffer.
type EdgeSpec struct {
	EndLevel, EndTileID, EndNodeID uint32
	FwdAccess, RevAccess           uint32

	Speed, Use, LaneCount, Classification, Surface uint32
	CycleLane                                      uint32
	BikeNetwork, UseSidepath, Dismount, Shoulder    bool
	LengthMeters, WeightedGrade                     uint32
}

// Encode assembles a complete, spec-compliant decompressed tile buffer
// (header + node array + empty transitions + edge array) from a header
// origin and node/edge specs. It is the inverse of parseTile/GetEdgeEnd/
// GetEdgeDetails and exists to build test fixtures and tooling around the
// tile format without duplicating the bit layout at every call site.
func Encode(baseLat, baseLon float64, nodes []NodeSpec, edges []EdgeSpec) []byte {
	nodeCount := uint32(len(nodes))
	edgeCount := uint32(len(edges))
	const transCount = uint32(0)

	nodesOffset := HeaderSize
	transitionsOffset := nodesOffset + int(nodeCount)*NodeSize
	edgesOffset := transitionsOffset + int(transCount)*transitionSize
	total := edgesOffset + int(edgeCount)*EdgeSize

	buf := make([]byte, total)

	putFloat32(buf, headerBaseLonOffset, float32(baseLon))
	putFloat32(buf, headerBaseLatOffset, float32(baseLat))

	counts := uint64(nodeCount) | uint64(edgeCount)<<21
	putU64(buf, headerCountsOffset, counts)
	putU32(buf, headerTransitionsOffset, transCount)

	for i, n := range nodes {
		off := nodesOffset + i*NodeSize

		dLat := n.Lat - baseLat
		dLon := n.Lon - baseLon
		latUnits := int64(dLat/1e-7 + 0.5)
		lonUnits := int64(dLon/1e-7 + 0.5)

		latMicro := uint64(latUnits / 10)
		latNano := uint64(latUnits % 10)
		lonMicro := uint64(lonUnits / 10)
		lonNano := uint64(lonUnits % 10)

		w0 := latMicro | latNano<<nodeLatNanoShift | lonMicro<<nodeLonMicroShift | lonNano<<nodeLonNanoShift
		w1 := uint64(n.EdgeIndex) | uint64(n.EdgeCount)<<nodeEdgeCountShift

		putU64(buf, off, w0)
		putU64(buf, off+8, w1)
	}

	for i, e := range edges {
		off := edgesOffset + i*EdgeSize

		endnode := uint64(e.EndLevel) | uint64(e.EndTileID)<<edgeEndTileIDShift | uint64(e.EndNodeID)<<edgeEndNodeIDShift
		putU64(buf, off, endnode)

		w2 := uint64(e.Speed) |
			uint64(e.Use)<<edgeUseShift |
			uint64(e.LaneCount)<<edgeLaneCountShift |
			uint64(e.Classification)<<edgeClassShift |
			uint64(e.Surface)<<edgeSurfaceShift
		putU64(buf, off+edgeWord2Offset, w2)

		w3 := uint64(e.FwdAccess) |
			uint64(e.RevAccess)<<edgeRevAccessShift |
			uint64(e.CycleLane)<<edgeCycleLaneShift |
			boolBit(e.BikeNetwork)<<edgeBikeNetShift |
			boolBit(e.UseSidepath)<<edgeSidepathShift |
			boolBit(e.Dismount)<<edgeDismountShift |
			boolBit(e.Shoulder)<<edgeShoulderShift
		putU64(buf, off+edgeWord3Offset, w3)

		w4 := uint64(e.LengthMeters)<<edgeLengthShift | uint64(e.WeightedGrade)<<edgeGradeShift
		putU64(buf, off+edgeWord4Offset, w4)
	}

	return buf
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

func putU32(b []byte, off int, v uint32) {
	b[off] = byte(v)
	b[off+1] = byte(v >> 8)
	b[off+2] = byte(v >> 16)
	b[off+3] = byte(v >> 24)
}

func putU64(b []byte, off int, v uint64) {
	for i := 0; i < 8; i++ {
		b[off+i] = byte(v >> (uint(i) * 8))
	}
}

func putFloat32(b []byte, off int, f float32) {
	putU32(b, off, math.Float32bits(f))
}
