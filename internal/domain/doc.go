// Package domain defines the core types and interfaces shared by the
// weather advisor: forecast reports, parsed questions, and the contracts
// for fetching weather data and parsing natural-language questions.
package domain
