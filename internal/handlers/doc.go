// Package handlers contains the weatherd HTTP handlers: chart data
// endpoints for the UI and the natural-language ask endpoint.
package handlers
