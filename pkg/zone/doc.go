// Package zone holds the output-facing data types TileZone and Connection
// (spec.md §3): the zone record SegmentHelper, RoadHelper, ObjectGenerator
// and ObjectDistributor all read and write as the pipeline progresses, and
// the declarative inter-zone link a template expresses.
package zone
