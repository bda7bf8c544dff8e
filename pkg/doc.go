// Package syncservice exposes a single application supplied sync handler to a
// host. The host activates the Service, which looks up the handler name in the
// application metadata and constructs the handler from the registered
// constructors, and then binds to it to obtain the transport handle it uses
// to drive syncs.
package syncservice
