package mapobject

import "github.com/mapron/freeheroes-rmg/pkg/score"

// Bank is a guarded combat object with a randomized or fixed reward.
type Bank struct {
	Base
	BankID string
}

// NewBank constructs a guarded Bank object referencing a game-database
// map-bank entity by id.
func NewBank(bankID string, sc score.Score, guard int, mask Mask, onReject func()) *Bank {
	return &Bank{Base: NewBase("bank", ClassVisitable, sc, guard, mask, onReject), BankID: bankID}
}

// Artifact is a single pickable artifact.
type Artifact struct {
	Base
	ArtifactID string
}

func NewArtifact(artifactID string, sc score.Score, guard int, mask Mask, onReject func()) *Artifact {
	return &Artifact{Base: NewBase("artifact", ClassPickable, sc, guard, mask, onReject), ArtifactID: artifactID}
}

// RepulseKind disallows two artifacts sharing one group.
func (a *Artifact) RepulseKind() RepulseKind { return "artifact" }

// ResourcePile is a pickable pile of one resource kind.
type ResourcePile struct {
	Base
	ResourceID string
	Amount     int
}

func NewResourcePile(resourceID string, amount int, sc score.Score, guard int, mask Mask, onReject func()) *ResourcePile {
	return &ResourcePile{Base: NewBase("resource", ClassPickable, sc, guard, mask, onReject), ResourceID: resourceID, Amount: amount}
}

// RepulseKind is keyed by resource id: two piles of the same resource may
// not share a group, but piles of different resources may.
func (r *ResourcePile) RepulseKind() RepulseKind { return RepulseKind("resource:" + r.ResourceID) }

// Pandora is a visitable reward box with an arbitrary bundled reward.
type Pandora struct {
	Base
	RewardDesc string
}

func NewPandora(rewardDesc string, sc score.Score, guard int, mask Mask, onReject func()) *Pandora {
	return &Pandora{Base: NewBase("pandora", ClassVisitable, sc, guard, mask, onReject), RewardDesc: rewardDesc}
}

// Shrine grants a random or fixed spell on visit.
type Shrine struct {
	Base
	SpellID string
}

func NewShrine(spellID string, sc score.Score, guard int, mask Mask, onReject func()) *Shrine {
	return &Shrine{Base: NewBase("shrine", ClassVisitable, sc, guard, mask, onReject), SpellID: spellID}
}

// Scroll is a pickable scroll granting one spell.
type Scroll struct {
	Base
	SpellID string
}

func NewScroll(spellID string, sc score.Score, guard int, mask Mask, onReject func()) *Scroll {
	return &Scroll{Base: NewBase("scroll", ClassPickable, sc, guard, mask, onReject), SpellID: spellID}
}

// RepulseKind disallows two scrolls sharing one group.
func (s *Scroll) RepulseKind() RepulseKind { return "scroll" }

// Dwelling is a visitable creature dwelling.
type Dwelling struct {
	Base
	DwellingID string
}

func NewDwelling(dwellingID string, sc score.Score, guard int, mask Mask, onReject func()) *Dwelling {
	return &Dwelling{Base: NewBase("dwelling", ClassVisitable, sc, guard, mask, onReject), DwellingID: dwellingID}
}

// Visitable is a generic visitable object (map-visitable catalog entry)
// with no further specialization, e.g. a lighthouse or obelisk.
type Visitable struct {
	Base
	VisitableID string
}

func NewVisitable(visitableID string, sc score.Score, guard int, mask Mask, onReject func()) *Visitable {
	return &Visitable{Base: NewBase("visitable", ClassVisitable, sc, guard, mask, onReject), VisitableID: visitableID}
}

// Mine is a capturable resource-generating building.
type Mine struct {
	Base
	ResourceID string
}

func NewMine(resourceID string, sc score.Score, guard int, mask Mask, onReject func()) *Mine {
	return &Mine{Base: NewBase("mine", ClassVisitable, sc, guard, mask, onReject), ResourceID: resourceID}
}

// SkillHut grants a chosen secondary skill on visit.
type SkillHut struct {
	Base
	SkillID string
}

func NewSkillHut(skillID string, sc score.Score, guard int, mask Mask, onReject func()) *SkillHut {
	return &SkillHut{Base: NewBase("skill_hut", ClassVisitable, sc, guard, mask, onReject), SkillID: skillID}
}
