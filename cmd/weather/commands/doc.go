// Package commands defines the weather CLI: forecast summaries,
// terminal charts, natural-language questions and the interactive menu.
package commands
