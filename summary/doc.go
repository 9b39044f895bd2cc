// Package summary classifies a found route's edges and accumulates their
// lengths into four mutually-exclusive distance buckets: car-free,
// separated, with-cars, and pushing. It re-derives each edge from
// consecutive (state, next) pairs in the path rather than carrying edge
// indices through from search, keeping the summary logic independently
// testable against the "path integrity" property.
package summary
