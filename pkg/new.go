package syncservice

import (
	"context"

	"github.com/asecurityteam/logevent/v2"
	"github.com/asecurityteam/runhttp"
	"github.com/asecurityteam/settings/v2"
	"github.com/rs/xstats"

	"github.com/asecurityteam/syncservice/pkg/constructorfetcher"
	"github.com/asecurityteam/syncservice/pkg/domain"
)

// Runtime hosts a Service behind the HTTP bind endpoint. Starting the
// runtime is the activation of the service and its exit the deactivation.
type Runtime struct {
	HTTP    *runhttp.Runtime
	Service *Service
}

// Run activates the service and then serves bind requests until the HTTP
// runtime exits. A fatal activation error is returned before anything is
// served.
func (r *Runtime) Run() error {
	ctx := r.lifecycleContext()
	if err := r.Service.OnActivate(ctx); err != nil {
		return err
	}
	defer r.Service.OnDeactivate(ctx)
	return r.HTTP.Run()
}

func (r *Runtime) lifecycleContext() context.Context {
	ctx := context.Background()
	switch {
	case r.Service.logger != nil:
		ctx = logevent.NewContext(ctx, r.Service.logger)
	case r.Service.App.Logger != nil:
		ctx = logevent.NewContext(ctx, r.Service.App.Logger)
	}
	if r.Service.App.Stat != nil {
		ctx = xstats.NewContext(ctx, r.Service.App.Stat)
	}
	return ctx
}

// NewStatic generates a runtime bound to the given constructor mapping. The
// metadata source is used unless the settings name a manifest file.
func NewStatic(ctx context.Context, s settings.Source, constructors map[string]domain.Constructor, md domain.MetadataSource) (*Runtime, error) {
	return New(ctx, s, &constructorfetcher.Static{Constructors: constructors}, md)
}

// New generates a runtime that resolves handler names with the given
// ConstructorFetcher.
func New(ctx context.Context, s settings.Source, f domain.ConstructorFetcher, md domain.MetadataSource) (*Runtime, error) {
	src := &settings.PrefixSource{Source: s, Prefix: []string{"SYNCSERVICE"}}
	svc := new(Service)
	err := settings.NewComponent(
		ctx,
		src,
		&ServiceComponent{Constructors: f, Metadata: md},
		svc,
	)
	if err != nil {
		return nil, err
	}
	router := NewRouter(&RouterConfig{Binder: svc})
	rtC := &runhttp.Component{Handler: router}
	rt := new(runhttp.Runtime)
	err = settings.NewComponent(ctx, src, rtC, rt)
	if err != nil {
		return nil, err
	}
	return &Runtime{HTTP: rt, Service: svc}, nil
}
