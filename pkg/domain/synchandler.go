package domain

import (
	"context"
	"net/http"
)

// SyncHandler is the contract every application supplied sync handler must
// satisfy. Concrete handlers usually embed the Base type of the root package
// which implements it.
type SyncHandler interface {
	// TransportHandle returns the endpoint through which the host drives
	// the handler.
	TransportHandle() TransportHandle
}

// Constructor is a function that produces a SyncHandler. Valid constructors
// have one of the following shapes, where T implements SyncHandler:
//
//	func(AppContext, bool) T
//	func(AppContext, bool) (T, error)
//
// The bool argument is the auto-initialize flag. The shape is only verified
// when the constructor is used which is why the type is left open.
type Constructor = interface{}

// ConstructorFetcher is a pluggable component that enables different
// strategies for resolving handler names to constructors.
type ConstructorFetcher interface {
	// FetchConstructor resolves the Constructor registered under the
	// given name. If a matching Constructor cannot be found then this
	// component must emit a NotFoundError.
	FetchConstructor(ctx context.Context, name string) (Constructor, error)
}

// Metadata is the bundle of static metadata published by an application.
type Metadata map[string]string

// MetadataSource plays the role of the package manager. It looks up the
// metadata bundle that belongs to an application.
type MetadataSource interface {
	// ApplicationMetadata returns the bundle for the given application. If
	// the application is unknown then this component must emit a
	// PackageNotFoundError.
	ApplicationMetadata(ctx context.Context, applicationID string) (Metadata, error)
}

// Binder resolves bind requests to transport handles.
type Binder interface {
	OnBind(ctx context.Context, r *http.Request) (TransportHandle, error)
}
