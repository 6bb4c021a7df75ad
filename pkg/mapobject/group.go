package mapobject

import (
	"github.com/google/uuid"
	"github.com/mapron/freeheroes-rmg/pkg/score"
	"github.com/mapron/freeheroes-rmg/pkg/tilegrid"
)

// RepulseKind marks objects that must not share a Group with another
// member carrying the same kind (spec.md §4.4's grouping rule: at most one
// of a given repulsing kind per group).
type RepulseKind string

// Groupable is satisfied by ZoneObject implementations that may be folded
// into a Group: every pickable kind in this package.
type Groupable interface {
	ZoneObject
	RepulseKind() RepulseKind
}

// Group is the synthetic consolidation object: several pickables sharing
// one guard and one visitable footprint, up to GuardSettings.GuardGroupLimit
// members (spec.md §4.4). A Group satisfies ZoneObject itself so that
// pkg/distribute can place it like any other object.
type Group struct {
	id       uuid.UUID
	members  []Groupable
	guard    int
	mask     Mask
	accepted bool
	placed   tilegrid.Pos
	hasPlace bool
	guardPos *tilegrid.Pos
}

// NewGroup starts an empty group anchored on mask (typically the first
// member's own mask, since all members share one visitable tile).
func NewGroup(mask Mask) *Group {
	return &Group{id: uuid.New(), mask: mask, accepted: true}
}

// CanAdd reports whether candidate may join the group: capacity, no
// duplicate id, and no second member sharing candidate's repulse kind
// (skipped when the kind is empty).
func (g *Group) CanAdd(candidate Groupable, limit int) bool {
	if limit <= 0 {
		limit = 4
	}
	if len(g.members) >= limit {
		return false
	}
	for _, m := range g.members {
		if m.ID() == candidate.ID() {
			return false
		}
		if candidate.RepulseKind() != "" && m.RepulseKind() == candidate.RepulseKind() {
			return false
		}
	}
	return true
}

// Add appends candidate to the group and raises the group's guard to the
// strongest member guard, folding the candidate's own guard requirement in.
func (g *Group) Add(candidate Groupable) {
	g.members = append(g.members, candidate)
	if gv := candidate.GetGuard(); gv > g.guard {
		g.guard = gv
	}
}

// Members returns the group's constituent objects in join order.
func (g *Group) Members() []Groupable { return g.members }

func (g *Group) ID() uuid.UUID { return g.id }
func (g *Group) Kind() string  { return "group" }
func (g *Group) Class() Class  { return ClassPickable }

// GetScore sums every member's score.
func (g *Group) GetScore() score.Score {
	var total score.Score
	for _, m := range g.members {
		total = total.Plus(m.GetScore())
	}
	return total
}

func (g *Group) GetGuard() int { return g.guard }
func (g *Group) GetMask() Mask { return g.mask }
func (g *Group) Accepted() bool { return g.accepted }

// SetAccepted propagates rejection to every member so each returns its own
// pooled resource (e.g. an artifact back to ArtifactPool's carry-over queue).
func (g *Group) SetAccepted(v bool) {
	g.accepted = v
	if !v {
		for _, m := range g.members {
			m.SetAccepted(false)
		}
	}
}

func (g *Group) Place(anchor tilegrid.Pos, guardPos *tilegrid.Pos) {
	g.placed = anchor
	g.hasPlace = true
	g.guardPos = guardPos
	for _, m := range g.members {
		m.Place(anchor, guardPos)
	}
}

func (g *Group) PlacedAnchor() (tilegrid.Pos, bool) { return g.placed, g.hasPlace }
func (g *Group) GuardPos() *tilegrid.Pos            { return g.guardPos }
