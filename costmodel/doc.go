// Package costmodel computes the bicycle traversal cost of a decoded edge
// (tile.EdgeEnd + tile.EdgeDetails): a non-negative scalar approximating
// traversal time in seconds, scaled by a preference factor that reflects
// bicycle type, surface, grade, road category and the caller's routing
// preferences (avoid_cars, use_roads).
//
// The pushing multiplier (bike access absent, pedestrian access present) is
// deliberately NOT part of Cost's return value: it is applied once, by the
// search package, at edge-expansion time. The reference implementation this
// model is grounded on applies an equivalent multiplier twice — once inside
// its edge-cost function and again at each of its two (forward/backward)
// expansion call sites — which double-counts the penalty. Model exposes
// PushingFactor so callers apply it exactly once.
package costmodel
