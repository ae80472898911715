// Package location cleans user-entered place names.
//
// People paste whole phrases into location fields ("Perth tomorrow",
// "in Sydney for 3 days") and upstream lookups 404 on them. Sanitize
// strips the time words, prepositions and stray numbers and keeps just
// the place name.
package location
