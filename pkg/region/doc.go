// Package region implements the tile-set algebra spec.md §4.1 builds every
// higher-level pass on: a sorted, deduplicated set of tile pointers with
// union/intersection/difference, edge extraction, centroid lookup, and the
// four segmentation primitives (flood-fill, K-means, weighted K-means, grid
// split).
//
// A Region never copies tiles; it holds *tilegrid.Tile pointers into the
// grid that produced them, and is itself cheap to copy (it's a slice
// header). Every mutating constructor returns a new, sorted Region rather
// than mutating its receiver in place, except where explicitly documented
// (RegionWithEdge.Refine* family, which is meant to be applied iteratively
// to a single working region).
package region
