// Package search implements bidirectional A* over the tile graph: two
// independent frontiers (forward from the start node, backward from the
// goal node) expand in lockstep until their visited sets meet and the
// standard bidirectional-A* optimality guard closes the search.
//
// Every edge traversable by bicycle is traversable in either direction,
// which makes the backward frontier's expansion identical in shape to the
// forward one; both are driven through the same step/expand functions,
// parameterized by frontier rather than duplicated.
package search
