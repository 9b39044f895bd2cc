// Package tile implements the binary tile loader and bit-exact graph
// decoder: little-endian integer reads, the 272-byte tile header, the
// packed 32-byte node array, and the lazily-decoded 48-byte edge records
// (edge-end and edge-details views). It also owns the fixed-capacity,
// FIFO-evicted tile cache that is the sole owner of decoded tile buffers
// for the lifetime of a query.
//
// Nothing in this package allocates per-edge: EdgeEnd and EdgeDetails are
// decoded on demand from the tile's retained raw buffer and returned by
// value. Callers that need many edges from the same node simply call
// GetEdgeEnd/GetEdgeDetails in a loop over the node's edge range.
package tile
