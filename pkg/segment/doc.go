// Package segment implements SegmentHelper (spec.md §4.2): initial zone
// K-means placement, iterative area refinement, border and connection
// processing, zone-internal sub-segmentation, the intra-zone road-node
// graph, and the heat map Dijkstra pass. It is the largest single
// component in the pipeline and the one every later stage (roads,
// objectgen, distribute, obstacles) reads its TileZone fields from.
package segment
