// Package previewsvg renders a completed fhmap.FHMap to an SVG for
// debugging (spec.md Non-goals exclude a native .h3m/.fh renderer; this is
// a diagnostic aid only, gated behind --debug-svg in cmd/rmgen).
package previewsvg
