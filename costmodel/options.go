package costmodel

// Option customizes a Model at construction by mutating it before use.
type Option func(*Model)

// WithBicycleType selects the speed/surface profile. Panics on an unknown
// type: this is a programmer error (internal callers only), not a runtime
// input — external bike_type arguments are validated separately via
// ParseBicycleType.
func WithBicycleType(b BicycleType) Option {
	if !b.valid() {
		panic("costmodel: WithBicycleType(invalid)")
	}
	return func(m *Model) {
		m.bicycleType = b
	}
}

// WithUseRoads sets the [0,1] preference for riding on generic roads vs.
// avoiding them; 0 = avoid roads as much as possible, 1 = indifferent.
// Out-of-range values are clamped rather than rejected, since this value
// commonly arrives from an unchecked CLI float.
func WithUseRoads(useRoads float64) Option {
	return func(m *Model) {
		switch {
		case useRoads < 0:
			useRoads = 0
		case useRoads > 1:
			useRoads = 1
		}
		m.useRoads = useRoads
	}
}

// WithAvoidCars makes Cost apply the car-traffic stress penalty.
func WithAvoidCars(avoid bool) Option {
	return func(m *Model) {
		m.avoidCars = avoid
	}
}

// WithAvoidPushing raises PushingFactor from its default (2.0) to 5.0.
func WithAvoidPushing(avoid bool) Option {
	return func(m *Model) {
		m.avoidPushing = avoid
	}
}

// ParseBicycleType validates an external bike_type argument
// (0=Road, 1=Cross, 2=Hybrid, 3=Mountain), returning ErrInvalidBicycleType
// for anything outside that range.
func ParseBicycleType(v int) (BicycleType, error) {
	if v < 0 || v > int(Mountain) {
		return 0, ErrInvalidBicycleType
	}
	return BicycleType(v), nil
}
