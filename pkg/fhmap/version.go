package fhmap

// GameVersion selects which legacy map-format numbering the output
// assembly step should use for built-in object/terrain ids (spec.md §9's
// open question on HOTA vs. SOD offsets).
type GameVersion int

const (
	SOD GameVersion = iota
	HOTA
)

func (v GameVersion) String() string {
	switch v {
	case SOD:
		return "SOD"
	case HOTA:
		return "HOTA"
	default:
		return "unknown"
	}
}

// legacyOffsets is the small integer added to a gamedb LegacyID before it
// is written into a target format's numeric object-type field. HOTA
// inserted rows into several tables SOD never had, shifting every
// subsequent id; these are named constants rather than inferred from
// record counts so a future table change can't silently reshuffle them.
var legacyOffsets = map[GameVersion]map[string]int{
	SOD:  {"artifact": 0, "spell": 0, "hero": 0, "creature": 0},
	HOTA: {"artifact": 18, "spell": 4, "hero": 2, "creature": 3},
}

// LegacyOffset returns the numeric offset version applies to the named
// legacy id table, or 0 if version or table is unrecognized.
func (v GameVersion) LegacyOffset(table string) int {
	return legacyOffsets[v][table]
}
