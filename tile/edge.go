package tile

// EdgeEnd is the decoded endpoint and access-mask view of an edge record.
// Access bits are the OR of forward and reverse direction masks: cycling
// edges are treated as undirected, so the router never distinguishes
// which direction the bits originally described.
type EdgeEnd struct {
	EndLevel  uint8
	EndTileID uint32
	EndNodeID uint32

	HasCar        bool
	HasPedestrian bool
	HasBicycle    bool
}

// EdgeDetails is the decoded attribute view of an edge record.
type EdgeDetails struct {
	Speed          uint8 // km/h, default 15 if the packed field was 0
	Use            uint8
	LaneCount      uint8 // default 1 if the packed field was 0
	Classification uint8
	Surface        uint8

	CycleLane      uint8
	BikeNetwork    bool
	UseSidepath    bool
	Dismount       bool
	Shoulder       bool
	LengthMeters   uint32
	WeightedGrade  uint8 // 0..15, default 7 (flat) if the packed field was 0
}

// Road-use categories referenced by the cost model and route summary.
// Values match Valhalla's Use enum encoding.
const (
	UseRoad          = 0
	UseTrack         = 3
	UseLivingStreet  = 10
	UseServiceRoad   = 11
	UseCycleway      = 20
	UseMountainBike  = 21
	UseFootway       = 25
	UseSteps         = 26
	UsePath          = 27
	UseFerry         = 41
)

// edgeOffset returns the byte offset of edge idx within t's raw buffer, or
// ok=false if idx is out of range or the record would overrun the buffer.
func (t *Tile) edgeOffset(idx uint32) (off int, ok bool) {
	if idx >= t.EdgeCount {
		return 0, false
	}

	off = int(t.edgesOffset) + int(idx)*EdgeSize
	if off+EdgeSize > len(t.raw) {
		return 0, false
	}

	return off, true
}

// GetEdgeEnd decodes the endpoint and access view of edge idx. It returns
// ok=false if idx is out of range or the record is truncated; callers treat
// that as "edge leads nowhere, skip".
func (t *Tile) GetEdgeEnd(idx uint32) (EdgeEnd, bool) {
	off, ok := t.edgeOffset(idx)
	if !ok {
		return EdgeEnd{}, false
	}

	w0 := readU64(t.raw, off)
	w3 := readU64(t.raw, off+edgeWord3Offset)

	endnode := bits(w0, 0, edgeEndNodeWidth)

	fwd := bits(w3, edgeFwdAccessShift, edgeFwdAccessWidth)
	rev := bits(w3, edgeRevAccessShift, edgeRevAccessWidth)
	access := fwd | rev

	ee := EdgeEnd{
		EndLevel:      uint8(bits(endnode, edgeEndLevelShift, edgeEndLevelWidth)),
		EndTileID:     uint32(bits(endnode, edgeEndTileIDShift, edgeEndTileIDWidth)),
		EndNodeID:     uint32(bits(endnode, edgeEndNodeIDShift, edgeEndNodeIDWidth)),
		HasCar:        access&AccessCar != 0,
		HasPedestrian: access&AccessPedestrian != 0,
		HasBicycle:    access&AccessBicycle != 0,
	}

	return ee, true
}

// GetEdgeDetails decodes the attribute view of edge idx. It returns
// ok=false under the same conditions as GetEdgeEnd.
func (t *Tile) GetEdgeDetails(idx uint32) (EdgeDetails, bool) {
	off, ok := t.edgeOffset(idx)
	if !ok {
		return EdgeDetails{}, false
	}

	w2 := readU64(t.raw, off+edgeWord2Offset)
	w3 := readU64(t.raw, off+edgeWord3Offset)
	w4 := readU64(t.raw, off+edgeWord4Offset)

	speed := uint8(bits(w2, edgeSpeedShift, edgeSpeedWidth))
	if speed == 0 {
		speed = edgeDefaultSpeed
	}

	laneCount := uint8(bits(w2, edgeLaneCountShift, edgeLaneCountWidth))
	if laneCount == 0 {
		laneCount = edgeDefaultLaneCnt
	}

	grade := uint8(bits(w4, edgeGradeShift, edgeGradeWidth))
	if grade == 0 {
		grade = edgeDefaultGrade
	}

	ed := EdgeDetails{
		Speed:          speed,
		Use:            uint8(bits(w2, edgeUseShift, edgeUseWidth)),
		LaneCount:      laneCount,
		Classification: uint8(bits(w2, edgeClassShift, edgeClassWidth)),
		Surface:        uint8(bits(w2, edgeSurfaceShift, edgeSurfaceWidth)),
		CycleLane:      uint8(bits(w3, edgeCycleLaneShift, edgeCycleLaneWidth)),
		BikeNetwork:    bits(w3, edgeBikeNetShift, edgeBikeNetWidth) != 0,
		UseSidepath:    bits(w3, edgeSidepathShift, edgeSidepathWidth) != 0,
		Dismount:       bits(w3, edgeDismountShift, edgeDismountWidth) != 0,
		Shoulder:       bits(w3, edgeShoulderShift, edgeShoulderWidth) != 0,
		LengthMeters:   uint32(bits(w4, edgeLengthShift, edgeLengthWidth)),
		WeightedGrade:  grade,
	}

	return ed, true
}
