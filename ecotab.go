// Package ecotab extracts typed, tabular scientific-metadata records from
// the loosely structured HTML pages and flat text dumps published by the
// FRED and TRY ecological data catalogs.
//
// The core is a set of pure functions: a table tokenizer, header
// normalization, heuristic table selection, row-to-record mapping, scalar
// coercion, citation/DOI splitting and line-oriented fallback parsers. It
// accepts an in-memory string and returns in-memory records; it never
// performs I/O and never fails on malformed input.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., html/, goquery/, sqlite/, http/).
package ecotab
