// Package template parses the declarative map template (spec.md §6) and
// drives the TemplateProcessor orchestration of spec.md §4.6: the fixed
// stage sequence that turns a Template, a seed, and a gamedb.Database into
// an fhmap.FHMap.
package template
