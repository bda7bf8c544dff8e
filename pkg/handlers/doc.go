// Package handlers is a container for HTTP handlers. Note that this is not a
// container for sync handler implementations. Instead, this is where the
// http.Handler instances are defined that expose the bind and sync endpoints.
package handlers
