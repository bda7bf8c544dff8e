package syncservice

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/asecurityteam/runhttp"
	"github.com/asecurityteam/syncservice/pkg/domain"
)

// MetadataKey is the default metadata key under which applications publish
// the name of their sync handler. It may be set at build time with
// `-ldflags "-X github.com/asecurityteam/syncservice/pkg.MetadataKey=<value>"`
// or per deployment through the SYNCSERVICE_SYNC_METADATAKEY setting.
var MetadataKey = "sync_metadata"

// Service owns the single sync handler of the process and answers the
// lifecycle and bind calls of the host.
//
// The handler is discovered and constructed on the first OnActivate call
// only. The outcome of that attempt is final: a handler that failed to
// construct is never retried, and OnBind reports UnboundHandlerError for
// the rest of the process lifetime.
type Service struct {
	// App is handed to the handler constructor.
	App domain.AppContext
	// MetadataKey names the metadata entry holding the handler name. The
	// default value is MetadataKey.
	MetadataKey string
	// Constructors resolves handler names.
	Constructors domain.ConstructorFetcher
	// LogFn is used to extract the logger from the context. The default
	// value is runhttp.LoggerFromContext.
	LogFn domain.LogFn
	// StatFn is used to extract the stat client from the context. The
	// default value is runhttp.StatFromContext.
	StatFn domain.StatFn

	// logger, when set, is used for the lifecycle events of a Runtime.
	logger domain.Logger
	state  atomic.Pointer[registryState]
}

type registryState struct {
	once    sync.Once
	handler atomic.Pointer[boundHandler]
	fatal   error
}

type boundHandler struct {
	domain.SyncHandler
}

// NewService returns a Service with default settings. A zero Service is
// also usable and picks up the same defaults.
func NewService(app domain.AppContext, constructors domain.ConstructorFetcher) *Service {
	return &Service{
		App:          app,
		MetadataKey:  MetadataKey,
		Constructors: constructors,
		LogFn:        runhttp.LoggerFromContext,
		StatFn:       runhttp.StatFromContext,
	}
}

func (s *Service) registry() *registryState {
	if st := s.state.Load(); st != nil {
		return st
	}
	s.state.CompareAndSwap(nil, &registryState{})
	return s.state.Load()
}

func (s *Service) logFn() domain.LogFn {
	if s.LogFn == nil {
		return runhttp.LoggerFromContext
	}
	return s.LogFn
}

func (s *Service) statFn() domain.StatFn {
	if s.StatFn == nil {
		return runhttp.StatFromContext
	}
	return s.StatFn
}

func (s *Service) metadataKey() string {
	if s.MetadataKey == "" {
		return MetadataKey
	}
	return s.MetadataKey
}

// OnActivate discovers and constructs the sync handler if no attempt was
// made before. Only fatal errors are returned; the same fatal error is
// returned by every later call.
func (s *Service) OnActivate(ctx context.Context) error {
	logger := s.logFn()(ctx)
	stat := s.statFn()(ctx)
	logger.Info(serviceCreated{})
	stat.Count("syncservice.activate", 1)
	st := s.registry()
	st.once.Do(func() {
		name, h, err := s.discover(ctx)
		switch {
		case err == nil:
			st.handler.Store(&boundHandler{SyncHandler: h})
			logger.Info(handlerConstructed{Handler: name})
		case domain.IsFatal(err):
			st.fatal = err
		default:
			stat.Count("syncservice.construction.failure", 1)
			failure := ""
			if cErr, ok := err.(domain.ConstructionError); ok {
				failure = string(cErr.Failure)
			}
			logger.Error(constructionFailed{Handler: name, Failure: failure, Reason: err.Error()})
		}
	})
	if st.fatal != nil {
		logger.Error(activationFailed{Reason: st.fatal.Error()})
	}
	return st.fatal
}

// OnDeactivate records the end of the service. The handler is left as is.
func (s *Service) OnDeactivate(ctx context.Context) {
	s.logFn()(ctx).Info(serviceDestroyed{})
}

// OnBind returns the transport handle of the sync handler. It does not wait
// for an OnActivate call in progress.
func (s *Service) OnBind(ctx context.Context, r *http.Request) (domain.TransportHandle, error) {
	bh := s.registry().handler.Load()
	if bh == nil {
		return nil, domain.UnboundHandlerError{}
	}
	return bh.TransportHandle(), nil
}

// SyncHandler returns the constructed handler or nil.
func (s *Service) SyncHandler() domain.SyncHandler {
	bh := s.registry().handler.Load()
	if bh == nil {
		return nil
	}
	return bh.SyncHandler
}
