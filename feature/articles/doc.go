// Package articles owns the persisted article and user entities and the
// store that the import pipeline reconciles against.
//
// The store exposes slug-keyed lookups and writes; the slug's uniqueness
// constraint is the pipeline's sole concurrency safeguard. The surrounding
// web tier consumes these entities read-only.
package articles
