package score

import "fmt"

// Attr names one axis of a Score vector.
type Attr int

const (
	AttrArmy Attr = iota
	AttrGold
	AttrResource
	AttrResourceGen
	AttrExperience
	AttrArtStat
	AttrArtSupport
	AttrSpellOffensive
	AttrSpellCommon
	AttrSpellAll
	AttrUpgrade
	AttrArmyDwelling
	AttrMisc

	attrCount
)

// String returns the human-readable attribute name.
func (a Attr) String() string {
	switch a {
	case AttrArmy:
		return "Army"
	case AttrGold:
		return "Gold"
	case AttrResource:
		return "Resource"
	case AttrResourceGen:
		return "ResourceGen"
	case AttrExperience:
		return "Experience"
	case AttrArtStat:
		return "ArtStat"
	case AttrArtSupport:
		return "ArtSupport"
	case AttrSpellOffensive:
		return "SpellOffensive"
	case AttrSpellCommon:
		return "SpellCommon"
	case AttrSpellAll:
		return "SpellAll"
	case AttrUpgrade:
		return "Upgrade"
	case AttrArmyDwelling:
		return "ArmyDwelling"
	case AttrMisc:
		return "Misc"
	default:
		return fmt.Sprintf("Attr(%d)", int(a))
	}
}

// Attrs lists every attribute, in declaration order.
func Attrs() []Attr {
	out := make([]Attr, attrCount)
	for i := range out {
		out[i] = Attr(i)
	}
	return out
}

// Score is a signed integer vector over Attr. The zero value is an
// all-zero score.
type Score struct {
	values [attrCount]int
}

// Get returns the value at attribute a.
func (s Score) Get(a Attr) int { return s.values[a] }

// Set returns a copy of s with attribute a set to v.
func (s Score) Set(a Attr, v int) Score {
	s.values[a] = v
	return s
}

// Add returns a copy of s with attribute a incremented by v.
func (s Score) Add(a Attr, v int) Score {
	s.values[a] += v
	return s
}

// Plus returns the component-wise sum of s and o.
func (s Score) Plus(o Score) Score {
	var out Score
	for i := range s.values {
		out.values[i] = s.values[i] + o.values[i]
	}
	return out
}

// Minus returns the component-wise difference s - o.
func (s Score) Minus(o Score) Score {
	var out Score
	for i := range s.values {
		out.values[i] = s.values[i] - o.values[i]
	}
	return out
}

// Max returns the largest single attribute value in s.
func (s Score) Max() int {
	m := s.values[0]
	for _, v := range s.values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Total returns the sum across every attribute.
func (s Score) Total() int {
	sum := 0
	for _, v := range s.values {
		sum += v
	}
	return sum
}

// ExceedsAny reports whether any attribute of s is strictly greater than
// the corresponding attribute of limit. Attributes with a non-positive
// limit are treated as unbounded (always satisfied).
func (s Score) ExceedsAny(limit Score) bool {
	for i, v := range s.values {
		if limit.values[i] > 0 && v > limit.values[i] {
			return true
		}
	}
	return false
}

// IsZero reports whether every attribute is zero.
func (s Score) IsZero() bool {
	return s == Score{}
}
