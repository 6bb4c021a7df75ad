// Package tilegrid owns the map's tile storage: a flat, row-major array of
// Tiles with their 8-neighborhood links precomputed once at construction.
//
// Tiles never own each other. Every other package in this module (region,
// zone, segment, roads, distribute) references tiles through raw pointers
// into the TileGrid's backing array; neighbor pointers are set once in New
// and never mutated afterward. This mirrors the arena-plus-raw-pointer
// idiom the original C++ generator uses for its tile container, adapted to
// Go by letting the grid own a single backing slice and everyone else hold
// *Tile into it.
package tilegrid
