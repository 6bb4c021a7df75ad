// Package distribute implements ObjectDistributor: placing the objects
// ObjectGenerator produced onto a zone's free tiles. It estimates each
// candidate's occupied footprint (reward cells, guard danger zone, and the
// pass-around edge other objects must not block), runs a collision-shift
// oracle to nudge a colliding candidate onto free ground, bin-packs the
// initial segment assignment by free area and heat level, and anchors each
// object at its K-means fragment centroid or, failing that, on a free tile
// of the highest heat bucket in its segment (heat grows with distance from
// the zone's towns).
package distribute
