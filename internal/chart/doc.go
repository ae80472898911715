// Package chart renders forecast charts for the terminal: temperature
// trends and rain chances as scaled horizontal bars. Rendering is pure
// string work so callers and tests never need a TTY.
package chart
