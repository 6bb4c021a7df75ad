// Package roads implements RoadHelper (spec.md §4.3): A* pathfinding
// between a zone's road nodes, road-level assignment along each path (the
// strongest requested level wins where paths cross), a diagonal-step patch
// so rendered roads stay 4-connected, and a redundancy cleanup pass that
// removes spurious 2x2 loops.
//
// pkg/segment depends on pkg/roads for its connectivity-repair step
// (A*-path an orphan road-potential component to the largest one); roads
// itself only depends on pkg/tilegrid, pkg/region and pkg/zone (for
// RoadLevel), so this does not create an import cycle.
package roads
