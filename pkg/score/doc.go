// Package score implements spec.md §3's Score / ScoreAttr / ScoreSettings
// value types: the vector of point budgets (Army, Gold, Artifacts, ...)
// that drives pkg/objectgen's per-zone generation loop.
package score
