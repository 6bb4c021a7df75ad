package mapobject

import "github.com/google/uuid"

// MapGuard is a monster stack guarding one or more ZoneObjects. Guards may
// mirror another guard's composition (spec.md's mirror rule: two guards at
// symmetric template positions field identical stacks), resolved once all
// guards for a zone are known.
type MapGuard struct {
	id           uuid.UUID
	Value        int
	CreatureID   string
	Count        int
	MirrorFromID *uuid.UUID
}

// NewMapGuard creates a guard sized at value score points, with its
// creature composition left for pkg/template's Guards stage to assign.
func NewMapGuard(value int) *MapGuard {
	return &MapGuard{id: uuid.New(), Value: value}
}

func (g *MapGuard) ID() uuid.UUID { return g.id }

// Mirror makes g copy source's eventual composition instead of rolling its
// own, per the mirror-guard resolution ordering decision.
func (g *MapGuard) Mirror(source *MapGuard) {
	id := source.id
	g.MirrorFromID = &id
}

// Resolved reports whether the guard has been assigned a concrete
// creature composition (directly, or pending mirror resolution).
func (g *MapGuard) Resolved() bool {
	return g.CreatureID != "" || g.MirrorFromID != nil
}
