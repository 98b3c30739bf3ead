// Package http contains the HTTP handlers for the dashboard.
//
// Handlers stay thin: parse and default query parameters, call the profile
// service, and translate pipeline errors into the shared APIError shape.
// Everything JSON goes through go-chi/render.
package http
