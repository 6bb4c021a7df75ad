// Package objectgen implements ObjectGenerator (spec.md §4.4): per-kind
// factories over a generic, weighted CommonRecordList, the score-budget
// main loop that draws factories and records until a zone's ScoreSettings
// targets are met, pool-backed artifact/spell draws, and the post-loop
// grouping pass that consolidates guarded pickables into mapobject.Group
// instances.
package objectgen
