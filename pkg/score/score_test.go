package score

import "testing"

func TestScoreArithmetic(t *testing.T) {
	a := Score{}.Set(AttrGold, 100).Set(AttrArmy, 50)
	b := Score{}.Set(AttrGold, 30)

	sum := a.Plus(b)
	if sum.Get(AttrGold) != 130 || sum.Get(AttrArmy) != 50 {
		t.Fatalf("unexpected sum: %+v", sum)
	}

	diff := a.Minus(b)
	if diff.Get(AttrGold) != 70 {
		t.Fatalf("unexpected diff: %+v", diff)
	}

	if got, want := a.Max(), 100; got != want {
		t.Fatalf("Max() = %d, want %d", got, want)
	}
	if got, want := a.Total(), 150; got != want {
		t.Fatalf("Total() = %d, want %d", got, want)
	}
}

func TestExceedsAny(t *testing.T) {
	limit := Score{}.Set(AttrGold, 100)
	over := Score{}.Set(AttrGold, 150)
	under := Score{}.Set(AttrGold, 50)

	if !over.ExceedsAny(limit) {
		t.Fatalf("expected over-budget score to exceed limit")
	}
	if under.ExceedsAny(limit) {
		t.Fatalf("did not expect under-budget score to exceed limit")
	}
	// Zero limit on an attribute means unbounded.
	unbounded := Score{}.Set(AttrArmy, 1_000_000)
	if unbounded.ExceedsAny(limit) {
		t.Fatalf("attributes with zero limit should be unbounded")
	}
}

func TestSettingsAllows(t *testing.T) {
	s := Settings{Exclude: []GeneratorKind{GeneratorBank}}
	if s.Allows(GeneratorBank) {
		t.Fatalf("excluded kind should not be allowed")
	}
	if !s.Allows(GeneratorMine) {
		t.Fatalf("non-excluded kind should be allowed")
	}

	withInclude := Settings{Include: []GeneratorKind{GeneratorMine, GeneratorDwelling}}
	if withInclude.Allows(GeneratorBank) {
		t.Fatalf("kind outside include list should not be allowed")
	}
	if !withInclude.Allows(GeneratorMine) {
		t.Fatalf("kind inside include list should be allowed")
	}
}
