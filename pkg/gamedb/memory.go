package gamedb

import "sort"

// MemoryDB is an in-memory Database, grounded on the teacher's pattern of
// keeping generated/loaded fixture data in plain Go maps rather than a
// store with its own query language.
type MemoryDB struct {
	byKind        map[Kind][]Record
	byKindAndID   map[Kind]map[string]int // index into byKind[kind]
	legacyOrdered map[Kind][]*Record       // lazily built, cached
}

// NewMemoryDB builds a MemoryDB from a flat record list. Records are
// grouped by Kind and indexed by ID; Records(kind) iterates in the order
// records were supplied for that kind.
func NewMemoryDB(records []Record) *MemoryDB {
	db := &MemoryDB{
		byKind:      make(map[Kind][]Record),
		byKindAndID: make(map[Kind]map[string]int),
	}
	for _, r := range records {
		db.byKind[r.Kind] = append(db.byKind[r.Kind], r)
		idx := db.byKindAndID[r.Kind]
		if idx == nil {
			idx = make(map[string]int)
			db.byKindAndID[r.Kind] = idx
		}
		idx[r.ID] = len(db.byKind[r.Kind]) - 1
	}
	return db
}

func (db *MemoryDB) Find(kind Kind, id string) (Record, bool) {
	idx, ok := db.byKindAndID[kind]
	if !ok {
		return Record{}, false
	}
	i, ok := idx[id]
	if !ok {
		return Record{}, false
	}
	return db.byKind[kind][i], true
}

func (db *MemoryDB) Records(kind Kind) []Record {
	return db.byKind[kind]
}

func (db *MemoryDB) LegacyOrderedRecords(kind Kind) []*Record {
	if cached, ok := db.legacyOrdered[kind]; ok {
		return cached
	}
	records := db.byKind[kind]
	maxLegacy := -1
	for _, r := range records {
		if r.LegacyID > maxLegacy {
			maxLegacy = r.LegacyID
		}
	}
	out := make([]*Record, maxLegacy+1)
	for i := range records {
		r := records[i]
		if r.LegacyID >= 0 {
			out[r.LegacyID] = &r
		}
	}
	if db.legacyOrdered == nil {
		db.legacyOrdered = make(map[Kind][]*Record)
	}
	db.legacyOrdered[kind] = out
	return out
}

// Kinds returns the set of kinds present in db, sorted for stable output.
func (db *MemoryDB) Kinds() []Kind {
	out := make([]Kind, 0, len(db.byKind))
	for k := range db.byKind {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
