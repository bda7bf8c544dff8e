package syncservice

import (
	"context"
	"sync"

	"github.com/asecurityteam/runhttp"
	"github.com/asecurityteam/syncservice/pkg/domain"
	v1 "github.com/asecurityteam/syncservice/pkg/handlers/v1"
)

// Base is the building block of application supplied sync handlers. A
// concrete handler embeds *Base, provides its sync behavior as a
// domain.Handler and thereby satisfies domain.SyncHandler:
//
//	type contactsHandler struct {
//		*syncservice.Base
//	}
//
//	func newContactsHandler(app domain.AppContext, autoInitialize bool) *contactsHandler {
//		return &contactsHandler{Base: syncservice.NewBase(app, autoInitialize, lambda.NewHandler(syncContacts))}
//	}
//
// Unless parallel syncs are allowed, Base runs one sync at a time.
type Base struct {
	// App is the application context given to the constructor.
	App domain.AppContext
	// AutoInitialize is the flag given to the constructor. The registry
	// always constructs handlers with it set.
	AutoInitialize bool
	// AllowParallelSyncs permits concurrent Invoke calls.
	AllowParallelSyncs bool

	handler   domain.Handler
	lock      sync.Mutex
	transport domain.TransportHandle
}

// NewBase keeps the constructor arguments and disallows parallel syncs.
func NewBase(app domain.AppContext, autoInitialize bool, h domain.Handler) *Base {
	return NewBaseParallel(app, autoInitialize, false, h)
}

// NewBaseParallel is like NewBase but allows choosing whether syncs may run
// in parallel.
func NewBaseParallel(app domain.AppContext, autoInitialize bool, allowParallelSyncs bool, h domain.Handler) *Base {
	if app.Stat != nil {
		h = &statHandler{Handler: h, Stat: app.Stat}
	}
	if app.Logger != nil {
		h = &loggingHandler{Handler: h, Logger: app.Logger}
	}
	b := &Base{
		App:                app,
		AutoInitialize:     autoInitialize,
		AllowParallelSyncs: allowParallelSyncs,
		handler:            h,
	}
	b.transport = &v1.Sync{
		LogFn:   runhttp.LoggerFromContext,
		StatFn:  runhttp.StatFromContext,
		Handler: b,
	}
	return b
}

// Invoke runs a single sync with the given payload.
func (b *Base) Invoke(ctx context.Context, payload []byte) ([]byte, error) {
	if !b.AllowParallelSyncs {
		b.lock.Lock()
		defer b.lock.Unlock()
	}
	return b.handler.Invoke(ctx, payload)
}

// TransportHandle returns the http.Handler that drives Invoke.
func (b *Base) TransportHandle() domain.TransportHandle {
	return b.transport
}
