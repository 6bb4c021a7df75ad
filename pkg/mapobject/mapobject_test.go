package mapobject

import (
	"testing"

	"github.com/mapron/freeheroes-rmg/pkg/rng"
	"github.com/mapron/freeheroes-rmg/pkg/score"
	"github.com/mapron/freeheroes-rmg/pkg/tilegrid"
)

func TestSetAccepted_FiresOnRejectOnce(t *testing.T) {
	calls := 0
	a := NewArtifact("ammo-cart", score.Score{}, 1000, Mask{}, func() { calls++ })

	a.SetAccepted(false)
	a.SetAccepted(false)
	if calls != 1 {
		t.Fatalf("onReject fired %d times, want 1", calls)
	}

	a.SetAccepted(true)
	a.SetAccepted(false)
	if calls != 2 {
		t.Fatalf("onReject fired %d times after re-accept/reject, want 2", calls)
	}
}

func TestPlace_RecordsAnchorAndGuard(t *testing.T) {
	var o ZoneObject = NewMine("sawmill", score.Score{}, 500, Mask{}, nil)
	if _, ok := o.PlacedAnchor(); ok {
		t.Fatalf("expected unplaced object to report ok=false")
	}

	anchor := mustPos(3, 4)
	guard := mustPos(3, 5)
	o.Place(anchor, &guard)

	got, ok := o.PlacedAnchor()
	if !ok || got != anchor {
		t.Fatalf("PlacedAnchor() = %v, %v; want %v, true", got, ok, anchor)
	}
	if o.GuardPos() == nil || *o.GuardPos() != guard {
		t.Fatalf("GuardPos() = %v, want %v", o.GuardPos(), guard)
	}
}

func TestGroup_CapacityAndRepulse(t *testing.T) {
	g := NewGroup(Mask{})

	a1 := NewArtifact("sword-1", score.Score{}, 0, Mask{}, nil)
	a2 := NewArtifact("sword-2", score.Score{}, 0, Mask{}, nil)

	if !g.CanAdd(a1, 4) {
		t.Fatalf("expected empty group to accept first artifact")
	}
	g.Add(a1)

	if g.CanAdd(a2, 4) {
		t.Fatalf("expected group to reject a second artifact (same repulse kind)")
	}

	r1 := NewResourcePile("gold", 1000, score.Score{}, 0, Mask{}, nil)
	if !g.CanAdd(r1, 4) {
		t.Fatalf("expected group to accept a resource pile alongside an artifact")
	}
	g.Add(r1)

	if len(g.Members()) != 2 {
		t.Fatalf("Members() len = %d, want 2", len(g.Members()))
	}
}

func TestGroup_CapacityLimit(t *testing.T) {
	g := NewGroup(Mask{})
	for i := 0; i < 4; i++ {
		r := NewResourcePile(string(rune('a'+i)), 100, score.Score{}, 0, Mask{}, nil)
		if !g.CanAdd(r, 4) {
			t.Fatalf("expected capacity for member %d", i)
		}
		g.Add(r)
	}
	over := NewResourcePile("overflow", 100, score.Score{}, 0, Mask{}, nil)
	if g.CanAdd(over, 4) {
		t.Fatalf("expected group at capacity to reject a further member")
	}
}

func TestGroup_ScoreSumsMembers(t *testing.T) {
	g := NewGroup(Mask{})
	a := NewArtifact("ring", score.Score{}.Set(score.AttrArtStat, 1000), 0, Mask{}, nil)
	r := NewResourcePile("wood", 5, score.Score{}.Set(score.AttrResource, 500), 0, Mask{}, nil)
	g.Add(a)
	g.Add(r)

	total := g.GetScore()
	if total.Get(score.AttrArtStat) != 1000 || total.Get(score.AttrResource) != 500 {
		t.Fatalf("Group.GetScore() = %+v", total)
	}
}

func TestGroup_RejectPropagatesToMembers(t *testing.T) {
	returned := 0
	a := NewArtifact("orb", score.Score{}, 0, Mask{}, func() { returned++ })
	g := NewGroup(Mask{})
	g.Add(a)

	g.SetAccepted(false)
	if returned != 1 {
		t.Fatalf("expected member onReject to fire once, got %d", returned)
	}
	if a.Accepted() {
		t.Fatalf("expected member to be marked rejected")
	}
}

func TestPool_DrawWithoutReplacement(t *testing.T) {
	p := NewArtifactPool([]string{"a", "b", "c"})
	src := rng.DeriveStage(1, "test-pool", nil)

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		id, ok := p.Draw(src, nil)
		if !ok {
			t.Fatalf("draw %d: expected a candidate", i)
		}
		if seen[id] {
			t.Fatalf("draw %d: id %q drawn twice", i, id)
		}
		seen[id] = true
	}
	if _, ok := p.Draw(src, nil); ok {
		t.Fatalf("expected pool to be exhausted after 3 draws of 3")
	}
}

func TestPool_ReturnFeedsCarryOverFirst(t *testing.T) {
	p := NewArtifactPool([]string{"a", "b"})
	src := rng.DeriveStage(1, "test-carry", nil)

	first, _ := p.Draw(src, nil)
	p.Return(first)

	next, ok := p.Draw(src, nil)
	if !ok || next != first {
		t.Fatalf("expected carry-over id %q to be redrawn first, got %q, %v", first, next, ok)
	}
}

func TestSpellPool_ReturnIsNoOp(t *testing.T) {
	p := NewSpellPool([]string{"a", "b"})
	src := rng.DeriveStage(1, "test-spell-carry", nil)

	first, _ := p.Draw(src, nil)
	p.Return(first)

	second, ok := p.Draw(src, nil)
	if !ok || second == first {
		t.Fatalf("expected a fresh draw, not the returned id %q; got %q", first, second)
	}
	if _, ok := p.Draw(src, nil); ok {
		t.Fatalf("expected pool to be exhausted: SpellPool has no carry-over to fall back on")
	}
}

func TestPool_FilterExcludesCandidates(t *testing.T) {
	p := NewArtifactPool([]string{"a", "b", "c"})
	src := rng.DeriveStage(1, "test-filter", nil)

	id, ok := p.Draw(src, func(id string) bool { return id == "c" })
	if !ok || id != "c" {
		t.Fatalf("Draw with filter = %q, %v; want c, true", id, ok)
	}
}

func TestMapGuard_Mirror(t *testing.T) {
	source := NewMapGuard(1000)
	source.CreatureID = "azure-dragon"

	mirror := NewMapGuard(1000)
	mirror.Mirror(source)

	if !mirror.Resolved() {
		t.Fatalf("expected mirrored guard to report resolved")
	}
	if mirror.MirrorFromID == nil || *mirror.MirrorFromID != source.ID() {
		t.Fatalf("MirrorFromID = %v, want %v", mirror.MirrorFromID, source.ID())
	}
}

func mustPos(x, y int) tilegrid.Pos {
	return tilegrid.Pos{X: x, Y: y}
}
