// Package advisor renders forecast reports as short, human answers:
// a direct verdict for the asked attribute first, then a compact
// per-day forecast block.
package advisor
