// Package locate finds the graph node nearest a given coordinate within a
// single tile, preferring a bike-or-pedestrian-accessible node over the
// strict geometric nearest when the two are close enough to each other.
package locate
