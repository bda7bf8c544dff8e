package syncservice

import (
	"net/http"

	"github.com/asecurityteam/runhttp"
	"github.com/asecurityteam/syncservice/pkg/domain"
	v1 "github.com/asecurityteam/syncservice/pkg/handlers/v1"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// RouterConfig is used to alter the behavior of the default router
// and the HTTP endpoint handlers that it manages.
type RouterConfig struct {
	// HealthCheck defines the route on which the service will respond
	// with automatic 200s. This is here to integrate with systems that
	// poll for liveliness. The default value is /healthcheck
	HealthCheck string
	// BindPath is the route the host posts bind requests to. The default
	// value is /sync
	BindPath string

	// Binder resolves bind requests, usually a *Service. There is no
	// default for this value.
	Binder domain.Binder

	// LogFn is used to extract the request logger from the request
	// context. The default value is runhttp.LoggerFromContext.
	LogFn domain.LogFn
	// StatFn is used to extract the request stat client from the
	// request context. The default value is runhttp.StatFromContext.
	StatFn domain.StatFn
}

func applyDefaults(conf *RouterConfig) *RouterConfig {
	if conf.HealthCheck == "" {
		conf.HealthCheck = "/healthcheck"
	}
	if conf.BindPath == "" {
		conf.BindPath = "/sync"
	}
	if conf.LogFn == nil {
		conf.LogFn = runhttp.LoggerFromContext
	}
	if conf.StatFn == nil {
		conf.StatFn = runhttp.StatFromContext
	}
	return conf
}

// NewRouter generates a mux that already has the bind route bound. This
// returns a mux from the chi project as a convenience for cases where custom
// middleware or additional routes need to be configured.
func NewRouter(conf *RouterConfig) *chi.Mux {
	conf = applyDefaults(conf)
	router := chi.NewMux()
	router.Use(middleware.Heartbeat(conf.HealthCheck))

	bindHandler := &v1.Bind{
		Binder: conf.Binder,
		LogFn:  conf.LogFn,
		StatFn: conf.StatFn,
	}

	router.Method(http.MethodPost, conf.BindPath, bindHandler)
	return router
}
