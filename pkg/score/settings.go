package score

// GeneratorKind identifies one of ObjectGenerator's per-category factories
// (Bank, Artifact, Pandora, ...). Defined here, rather than in pkg/objectgen,
// so ScoreSettings' include/exclude filters don't force a dependency from
// score onto objectgen.
type GeneratorKind string

const (
	GeneratorBank      GeneratorKind = "bank"
	GeneratorArtifact  GeneratorKind = "artifact"
	GeneratorResource  GeneratorKind = "resource"
	GeneratorPandora   GeneratorKind = "pandora"
	GeneratorShrine    GeneratorKind = "shrine"
	GeneratorScroll    GeneratorKind = "scroll"
	GeneratorDwelling  GeneratorKind = "dwelling"
	GeneratorVisitable GeneratorKind = "visitable"
	GeneratorMine      GeneratorKind = "mine"
	GeneratorSkillHut  GeneratorKind = "skill_hut"
)

// GuardSettings parameterizes guard-value generation for objects produced
// under one ScoreSettings entry.
type GuardSettings struct {
	Min             int
	Max             int
	GuardMinToGroup int
	GuardGroupLimit int
}

// Settings is one declarative score-budget entry: how many points of each
// attribute to place in a zone, with per-object bounds and generator
// filters (spec.md §3 ScoreSettings).
type Settings struct {
	Target       Score
	MinPerObject Score
	MaxPerObject Score
	Guard        GuardSettings

	// Include, if non-empty, restricts generation to these kinds.
	// Exclude always removes kinds, applied after Include.
	Include []GeneratorKind
	Exclude []GeneratorKind

	// PreferredHeat lists heat buckets for objects from this entry. The
	// template processor passes only the first entry to pkg/distribute,
	// which raises it to the minimum heat still available; later entries
	// are not read.
	PreferredHeat []int

	// Tolerance is the unconsumed-remainder threshold below which the main
	// loop (spec.md §4.4) considers the target satisfied.
	Tolerance int
}

// Allows reports whether kind survives this entry's include/exclude filter.
func (s Settings) Allows(kind GeneratorKind) bool {
	if len(s.Include) > 0 {
		found := false
		for _, k := range s.Include {
			if k == kind {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	for _, k := range s.Exclude {
		if k == kind {
			return false
		}
	}
	return true
}
