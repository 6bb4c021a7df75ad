package mapobject

import (
	"github.com/google/uuid"
	"github.com/mapron/freeheroes-rmg/pkg/score"
	"github.com/mapron/freeheroes-rmg/pkg/tilegrid"
)

// Class categorizes how an object participates in placement and grouping.
type Class int

const (
	ClassVisitable Class = iota
	ClassPickable
	ClassJoinable
	ClassRemovable
)

// Mask is an object's footprint: relative-offset sets of visitable and
// blocked cells, anchored at the object's bottom-right tile (legacy
// convention inherited from the original map format).
type Mask struct {
	Visitable []tilegrid.Pos
	Blocked   []tilegrid.Pos
}

// AbsoluteVisitable returns the mask's visitable cells translated to
// absolute positions anchored at anchor (the object's bottom-right tile).
func (m Mask) AbsoluteVisitable(anchor tilegrid.Pos) []tilegrid.Pos {
	return translate(m.Visitable, anchor)
}

// AbsoluteBlocked returns the mask's blocked cells translated to absolute
// positions anchored at anchor.
func (m Mask) AbsoluteBlocked(anchor tilegrid.Pos) []tilegrid.Pos {
	return translate(m.Blocked, anchor)
}

func translate(rel []tilegrid.Pos, anchor tilegrid.Pos) []tilegrid.Pos {
	out := make([]tilegrid.Pos, len(rel))
	for i, p := range rel {
		out[i] = anchor.Add(p)
	}
	return out
}

// ZoneObject is the common interface every concrete object kind satisfies,
// per spec.md §9's collapsed sum-type design.
type ZoneObject interface {
	ID() uuid.UUID
	Kind() string
	Class() Class
	GetScore() score.Score
	GetGuard() int
	GetMask() Mask
	Accepted() bool
	SetAccepted(bool)
	// Place commits the object's final anchor and (if guarded) guard tile.
	// Called once by pkg/distribute after a successful fit.
	Place(anchor tilegrid.Pos, guardPos *tilegrid.Pos)
	PlacedAnchor() (tilegrid.Pos, bool)
	GuardPos() *tilegrid.Pos
}

// Base implements the common ZoneObject fields and methods; every concrete
// kind embeds it.
type Base struct {
	id       uuid.UUID
	kind     string
	class    Class
	sc       score.Score
	guard    int
	mask     Mask
	accepted bool
	placed   tilegrid.Pos
	hasPlace bool
	guardPos *tilegrid.Pos

	// onReject runs each time SetAccepted(false) moves the object from
	// accepted to rejected, e.g. decrementing the owning record's attempt counter or
	// returning a drawn artifact to its pool's high-priority queue.
	onReject func()
}

// NewBase constructs the embedded Base for a concrete object kind.
func NewBase(kind string, class Class, sc score.Score, guard int, mask Mask, onReject func()) Base {
	return Base{
		id:       uuid.New(),
		kind:     kind,
		class:    class,
		sc:       sc,
		guard:    guard,
		mask:     mask,
		accepted: true,
		onReject: onReject,
	}
}

func (b *Base) ID() uuid.UUID       { return b.id }
func (b *Base) Kind() string        { return b.kind }
func (b *Base) Class() Class        { return b.class }
func (b *Base) GetScore() score.Score { return b.sc }
func (b *Base) GetGuard() int       { return b.guard }
func (b *Base) GetMask() Mask       { return b.mask }
func (b *Base) Accepted() bool      { return b.accepted }

// SetAccepted marks the object accepted or rejected. Rejecting an
// already-rejected object is a no-op (onReject fires once).
func (b *Base) SetAccepted(v bool) {
	wasAccepted := b.accepted
	b.accepted = v
	if !v && wasAccepted && b.onReject != nil {
		b.onReject()
	}
}

func (b *Base) Place(anchor tilegrid.Pos, guardPos *tilegrid.Pos) {
	b.placed = anchor
	b.hasPlace = true
	b.guardPos = guardPos
}

func (b *Base) PlacedAnchor() (tilegrid.Pos, bool) { return b.placed, b.hasPlace }
func (b *Base) GuardPos() *tilegrid.Pos            { return b.guardPos }
