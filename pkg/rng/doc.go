// Package rng provides the deterministic random-number facade the map
// generator core consumes.
//
// # Overview
//
// The generation core never owns true randomness: it is handed a Source and
// calls it in a fixed, documented order (see the stage table in
// pkg/template). The same (template, seed) pair must always walk that Source
// the same way and therefore produce byte-identical output.
//
// # Stage isolation
//
// Source itself is a thin interface so callers can plug in any seedable
// generator. DeriveStage builds one per pipeline stage from a single master
// seed using SHA-256:
//
//	seed_stage = H(masterSeed, stageName, configHash)
//
// This keeps an extra draw added to an early stage from reshuffling a later
// stage's sequence, which is the RNG-order fragility spec.md §5 calls out.
package rng
