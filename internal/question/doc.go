// Package question turns free-text weather questions into structured
// domain.Question values. An Ollama model is consulted first when
// available; a rule-based parser covers everything else, so parsing
// always yields a usable result.
package question
