// Package ollama is a minimal client for a local Ollama server, used to
// parse weather questions with a small LLM when one is running. The
// caller always keeps a rule-based fallback; every failure here is soft.
package ollama
