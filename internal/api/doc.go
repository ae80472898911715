// Package api assembles the weatherd Fiber application: middleware,
// routes and the landing page.
package api
