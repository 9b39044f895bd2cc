package tile

// fixtureNode/fixtureEdge/buildFixtureTile are thin local aliases over the
// exported Encode API, kept so this package's own tests read without a
// tile. prefix.
type fixtureNode = NodeSpec
type fixtureEdge = EdgeSpec

func buildFixtureTile(baseLat, baseLon float64, nodes []fixtureNode, edges []fixtureEdge) []byte {
	return Encode(baseLat, baseLon, nodes, edges)
}
