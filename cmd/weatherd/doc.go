// Command weatherd serves the Weather Advisor HTTP API: chart data
// endpoints, the ask endpoint, and a small landing page.
package main
