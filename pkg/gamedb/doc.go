// Package gamedb declares the read-only game-database collaborator spec.md
// §6 requires the generation core to consume: Find, Records, and
// LegacyOrderedRecords over every entity kind (artifact, unit, faction,
// spell, terrain, building, dwelling, hero-spec, map-bank, map-obstacle,
// map-visitable, object-def, player, resource, secondary-skill, hero).
//
// Production callers inject their own Database backed by the real game
// catalog. This package also ships MemoryDB, an in-memory reference
// implementation loadable from a YAML fixture via gopkg.in/yaml.v3 (the
// teacher's config format), used by tests and by cmd/rmgen's --gamedb flag
// for local experimentation. Fixture loading is the only file I/O this
// package performs, and it never runs as part of a Processor.Run call.
package gamedb
