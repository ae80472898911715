// Package wttr fetches forecasts from wttr.in.
//
// wttr.in serves a JSON forecast at /<location>?format=j1. Numbers in
// the payload are string-encoded; parsing is lenient and treats
// malformed values as zero, the way the service's own clients do.
package wttr
