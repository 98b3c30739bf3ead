// Package app wires the dashboard together: configuration, logging,
// telemetry, the dataset cache, the profile pipeline, and the HTTP server
// with its middleware chain and routes.
package app
