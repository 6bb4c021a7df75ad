// Package mapobject implements spec.md §3/§9's ZoneObject sum type: the
// inheritance-heavy C++ object hierarchy collapsed into one interface
// ({Place, GetScore, SetAccepted, GetMask, GetGuard}) and a closed set of
// concrete kinds (Bank, Artifact, ResourcePile, Pandora, Shrine, Scroll,
// Dwelling, Visitable, Mine, SkillHut, Group).
//
// Objects carry a uuid.UUID identity (pkg/mapobject uses
// github.com/google/uuid, as peterwoodman-lords-of-conquest does for its
// server-observable entities) rather than a process-local counter, because
// an object's id must stay stable and collision-free once handed to the
// external renderer/serializer in pkg/fhmap.
package mapobject
