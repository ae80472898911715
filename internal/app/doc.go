// Package app wires the advisor's dependency graph: the wttr client,
// the optional Ollama parser, and the question service behind the
// domain interfaces the CLI and server consume.
package app
