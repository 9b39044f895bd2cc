package costmodel

// BicycleType selects the speed and surface-tolerance profile used by Cost.
type BicycleType uint8

const (
	Road BicycleType = iota
	Cross
	Hybrid
	Mountain
)

func (b BicycleType) valid() bool {
	return b <= Mountain
}

// defaultCyclingSpeed is the unobstructed cruising speed per bicycle type,
// km/h.
var defaultCyclingSpeed = [4]float64{
	Road:     25.0,
	Cross:    20.0,
	Hybrid:   18.0,
	Mountain: 16.0,
}

// worstAllowedSurface is the surface-gate ceiling per bicycle type: edges
// with surface strictly greater than this value are not expanded.
var worstAllowedSurface = [4]uint8{
	Road:     2,
	Cross:    3,
	Hybrid:   4,
	Mountain: 6,
}

// surfaceSpeedFactor[type][surface 0..7] scales defaultCyclingSpeed for
// ground quality; paved (0,1) never penalizes, 7 (impassable) zeroes speed
// out (the surface gate rejects such edges before Cost is ever called).
var surfaceSpeedFactor = [4][8]float64{
	Road:     {1.0, 1.0, 0.9, 0.6, 0.5, 0.3, 0.2, 0.0},
	Cross:    {1.0, 1.0, 1.0, 0.8, 0.7, 0.5, 0.4, 0.0},
	Hybrid:   {1.0, 1.0, 1.0, 0.8, 0.6, 0.4, 0.25, 0.0},
	Mountain: {1.0, 1.0, 1.0, 1.0, 0.9, 0.75, 0.55, 0.0},
}

// gradeSpeedFactor[grade 0..15] scales speed by slope; 7 is flat (1.0x).
var gradeSpeedFactor = [16]float64{
	2.2, 2.0, 1.9, 1.7, 1.4, 1.2, 1.0, 1.0,
	0.85, 0.75, 0.65, 0.55, 0.5, 0.45, 0.4, 0.3,
}

const (
	dismountSpeedKmh = 5.1
	minSpeedKmh      = 4.0
	maxSpeedKmh      = 40.0

	stepsSpeedFactorKmh = 4.0
	stepsPenalty        = 3.0
	ferryPenalty        = 1.2

	cyclewayFactor     = 0.90
	trackFactor        = 0.90
	mountainBikeFactor = 0.85
	pathFootwayFactor  = 0.95
	livingStreetFactor = 0.95
	bikeNetworkFactor  = 0.95
	cycleLaneDiscount  = 0.10

	pushingFactorNormal = 2.0
	pushingFactorAvoid  = 5.0

	lowTrafficStressFactor = 1.05
	stressWeight           = 0.5
	stressMin              = 0.1
	stressMax              = 1.0
	stressBase             = 0.2
	stressSpeedOver50      = 0.3
	stressSpeedOver70      = 0.3
	stressLowClass         = 0.2
	stressMultiLane        = 0.1
	stressCycleLaneRelief  = 0.3
)
