package template

import (
	"github.com/mapron/freeheroes-rmg/pkg/rng"
	"github.com/mapron/freeheroes-rmg/pkg/score"
)

// applyDifficulty scales s's reward and guard axes by a percentage drawn
// uniformly from the matching UserSettings min/max range (spec.md §4
// supplemented "Difficulty multipliers" feature), before objectgen ever
// sees the target. Army/ArmyDwelling scale by the army range, Gold/
// Resource/ResourceGen by the gold range, and GuardSettings.Min/Max by the
// guard range; every other axis passes through unscaled.
func applyDifficulty(s score.Settings, u UserSettings, src rng.Source) score.Settings {
	armyPct := pickPercent(u.ArmyMinPercent, u.ArmyMaxPercent, src)
	goldPct := pickPercent(u.GoldMinPercent, u.GoldMaxPercent, src)
	guardPct := pickPercent(u.GuardMinPercent, u.GuardMaxPercent, src)

	scaleAttrs := func(sc score.Score, pct int, attrs ...score.Attr) score.Score {
		for _, a := range attrs {
			sc = sc.Set(a, scalePercent(sc.Get(a), pct))
		}
		return sc
	}

	armyAttrs := []score.Attr{score.AttrArmy, score.AttrArmyDwelling}
	goldAttrs := []score.Attr{score.AttrGold, score.AttrResource, score.AttrResourceGen}

	s.Target = scaleAttrs(s.Target, armyPct, armyAttrs...)
	s.Target = scaleAttrs(s.Target, goldPct, goldAttrs...)
	s.MaxPerObject = scaleAttrs(s.MaxPerObject, armyPct, armyAttrs...)
	s.MaxPerObject = scaleAttrs(s.MaxPerObject, goldPct, goldAttrs...)

	s.Guard.Min = scalePercent(s.Guard.Min, guardPct)
	s.Guard.Max = scalePercent(s.Guard.Max, guardPct)
	return s
}

func pickPercent(minPct, maxPct int, src rng.Source) int {
	if minPct <= 0 && maxPct <= 0 {
		return 100
	}
	if maxPct <= minPct {
		return minPct
	}
	return minPct + src.Gen(maxPct-minPct+1)
}

func scalePercent(v, pct int) int {
	return v * pct / 100
}
