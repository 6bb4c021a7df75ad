// Package fhmap holds FHMap, the in-memory output container a completed
// generation run assembles into: the tile grid, every zone's region, the
// placed objects grouped by kind, resolved map guards, any object-def
// override table, and the global config a consumer needs to serialize the
// result into a concrete map format. Building that binary format itself is
// out of scope here (spec.md §1); FHMap is the handoff point to whatever
// does that next.
package fhmap
