// Package discovery builds the catalog of installable toolkit versions.
//
// Three upstream listings advertise releases in unrelated formats: the
// redistribution manifest index, the toolkit archive page, and the
// opensource directory listing. Each is scraped by one Source
// implementation; a discovery pass fetches all of them concurrently,
// fails fast if any fetch fails, and merges the results with the static
// legacy version list into a deduplicated, sorted catalog filtered to
// the minimum supported release.
//
// The catalog is rebuilt from scratch on every resolution request —
// upstream publishes new releases without notice and the cost of a pass
// is three small page fetches.
package discovery
