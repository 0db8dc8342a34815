// Package snapshot renders virtual node trees into a stable, human-diffable
// textual form for test fixtures and inspection.
//
// The format is canonical: the same tree always serializes to byte-identical
// text. Elements render their opening tag single-line when it fits the width
// budget and one-attribute-per-line otherwise; text-only children collapse
// onto the opening-tag line when short enough. The format is not a wire
// protocol; its only compatibility promise is with existing test fixtures.
package snapshot
