// Package importer converts crawler export records into clean, storable
// articles.
//
// The pipeline is strictly sequential and one-directional:
//
//	RecordScanner -> (Renderer, Extractor, InferDate, NormalizeSlug) -> Engine -> article store
//
// # Components
//
//  1. RecordScanner: lazy reader over a JSONL export, tolerant of records
//     spanning multiple physical lines and of trailing corruption.
//  2. NormalizeSlug: canonicalizes raw slug/URL values into storage keys.
//  3. Renderer: renders structured content blocks, or cleans and sanitizes
//     legacy free-form HTML, into one canonical body format.
//  4. Extractor: derives cover image and summary via prioritized heuristics.
//  5. InferDate: multi-strategy fallback chain for the display date.
//  6. Engine: per-record create-or-update reconciliation keyed by slug,
//     with per-record fault containment and aggregate counts.
//
// # Idempotence
//
// Reconciliation is keyed by normalized slug, never by record position, so
// re-running the pipeline over the same export converges to the same stored
// state: the second run produces only updates.
//
// # Error containment
//
// Unparsable input units are dropped by the scanner; validation rejections
// and per-record persistence failures are counted as skips and logged. Only
// a failure to open the input at all aborts a run.
package importer
