// Package router is the top-level facade for a single routing query: it
// owns the tile store and wires together costmodel, search, locate, and
// summary into one Query call. A Router carries no per-query mutable
// state beyond its tile cache, so the heavy working sets (heaps, visited
// tables) are allocated fresh inside Query and released when it returns.
package router
