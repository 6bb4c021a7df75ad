package template

import (
	"github.com/mapron/freeheroes-rmg/pkg/gamedb"
	"github.com/mapron/freeheroes-rmg/pkg/mapobject"
	"github.com/mapron/freeheroes-rmg/pkg/objectgen"
)

// newZoneFactories builds one full set of ObjectGenerator factories,
// scoped to a single zone: artifact/spell pools are freshly drawn from the
// catalog per zone, so one zone's draws never starve another's, and zone
// processing order never changes another zone's output (spec.md doesn't
// mandate a map-wide pool; see DESIGN.md).
func newZoneFactories(db gamedb.Database) []objectgen.Factory {
	artifactIDs := recordIDs(db, gamedb.KindArtifact)
	spellIDs := recordIDs(db, gamedb.KindSpell)
	artifactPool := mapobject.NewArtifactPool(artifactIDs)
	spellPool := mapobject.NewSpellPool(spellIDs)

	return []objectgen.Factory{
		objectgen.NewBankFactory(db),
		objectgen.NewResourceFactory(db),
		objectgen.NewPandoraFactory(db),
		objectgen.NewDwellingFactory(db),
		objectgen.NewVisitableFactory(db),
		objectgen.NewMineFactory(db),
		objectgen.NewSkillHutFactory(db),
		objectgen.NewArtifactFactory(db, artifactPool),
		objectgen.NewScrollFactory(db, spellPool),
		objectgen.NewShrineFactory(db, spellPool),
	}
}

func recordIDs(db gamedb.Database, kind gamedb.Kind) []string {
	records := db.Records(kind)
	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	return ids
}
