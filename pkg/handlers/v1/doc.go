// Package v1 contains all http.Handlers used to service the version 1.X.X API of
// a running sync service. Bind is the entry point used by the host to obtain a
// handle and Sync is the handle itself: it drives a single sync handler.
package v1
