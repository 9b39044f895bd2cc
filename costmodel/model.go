package costmodel

import (
	"github.com/juhonkan/cycloroute/geo"
	"github.com/juhonkan/cycloroute/tile"
)

// Model holds the routing preferences that parameterize Cost. The zero
// value is not valid; build one with NewModel.
type Model struct {
	bicycleType  BicycleType
	useRoads     float64
	avoidCars    bool
	avoidPushing bool
}

// NewModel builds a Model defaulting to Road/useRoads=0.25/no avoidance,
// then applies opts.
func NewModel(opts ...Option) *Model {
	m := &Model{
		bicycleType: Road,
		useRoads:    0.25,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// BicycleType reports the model's configured profile.
func (m *Model) BicycleType() BicycleType { return m.bicycleType }

// WorstAllowedSurface is the surface-gate ceiling for m's bicycle type;
// callers reject edges with surface > this value before ever calling Cost.
func (m *Model) WorstAllowedSurface() uint8 {
	return worstAllowedSurface[m.bicycleType]
}

// DefaultSpeedKmh is the unobstructed cruising speed for m's bicycle type,
// used by the search package to scale its admissible heuristic.
func (m *Model) DefaultSpeedKmh() float64 {
	return defaultCyclingSpeed[m.bicycleType]
}

// PushingFactor is the multiplier the search package applies, exactly once
// at edge-expansion, when an edge lacks bike access but has pedestrian
// access.
func (m *Model) PushingFactor() float64 {
	if m.avoidPushing {
		return pushingFactorAvoid
	}
	return pushingFactorNormal
}

// Cost returns the scalar traversal cost of an edge, excluding the pushing
// multiplier (see PushingFactor). Callers must have already applied the
// surface gate (WorstAllowedSurface) and the hierarchy-level gate
// (end_level must equal 2) — Cost does not re-check them.
func (m *Model) Cost(ee tile.EdgeEnd, ed tile.EdgeDetails) float64 {
	length := float64(ed.LengthMeters)
	if length <= 0 {
		return 1e9
	}

	switch ed.Use {
	case tile.UseSteps:
		return length * geo.SpeedFactor(stepsSpeedFactorKmh) * stepsPenalty
	case tile.UseFerry:
		return length * geo.SpeedFactor(float64(ed.Speed)) * ferryPenalty
	}

	speed := m.cyclingSpeed(ed)
	timeCost := length / (speed / 3.6)

	return timeCost * m.preference(ee, ed)
}

func (m *Model) cyclingSpeed(ed tile.EdgeDetails) float64 {
	grade := ed.WeightedGrade
	if grade > 15 {
		grade = 15
	}
	surface := ed.Surface
	if surface > 7 {
		surface = 7
	}

	speed := defaultCyclingSpeed[m.bicycleType] * surfaceSpeedFactor[m.bicycleType][surface] * gradeSpeedFactor[grade]
	if ed.Dismount {
		speed = dismountSpeedKmh
	}

	switch {
	case speed < minSpeedKmh:
		speed = minSpeedKmh
	case speed > maxSpeedKmh:
		speed = maxSpeedKmh
	}

	return speed
}

// preference composes every multiplier except the pushing one.
func (m *Model) preference(ee tile.EdgeEnd, ed tile.EdgeDetails) float64 {
	pref := 1.0

	switch ed.Use {
	case tile.UseCycleway:
		pref = cyclewayFactor
	case tile.UseTrack:
		pref = trackFactor
	case tile.UseMountainBike:
		if m.bicycleType == Mountain {
			pref = mountainBikeFactor
		}
	case tile.UsePath, tile.UseFootway:
		pref = pathFootwayFactor
	case tile.UseLivingStreet:
		pref = livingStreetFactor
	case tile.UseRoad:
		pref = 1.0 + (1.0-m.useRoads)*0.15
		if ed.CycleLane >= 2 {
			pref -= cycleLaneDiscount
		}
	}

	if ed.BikeNetwork {
		pref *= bikeNetworkFactor
	}

	if m.avoidCars && ee.HasCar {
		pref *= m.carStressFactor(ed)
	}

	return pref
}

func (m *Model) carStressFactor(ed tile.EdgeDetails) float64 {
	switch ed.Use {
	case tile.UseTrack, tile.UseLivingStreet, tile.UseServiceRoad:
		return lowTrafficStressFactor
	}

	stress := stressBase
	if ed.Speed > 50 {
		stress += stressSpeedOver50
	}
	if ed.Speed > 70 {
		stress += stressSpeedOver70
	}
	if ed.Classification <= 2 {
		stress += stressLowClass
	}
	if ed.LaneCount >= 2 {
		stress += stressMultiLane
	}
	if ed.CycleLane >= 2 {
		stress -= stressCycleLaneRelief
	}

	switch {
	case stress < stressMin:
		stress = stressMin
	case stress > stressMax:
		stress = stressMax
	}

	return 1.0 + stress*stressWeight
}
