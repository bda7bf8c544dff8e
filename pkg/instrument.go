package syncservice

import (
	"context"

	"github.com/asecurityteam/logevent/v2"
	"github.com/rs/xstats"

	"github.com/asecurityteam/syncservice/pkg/domain"
)

// loggingHandler injects a copy of the application logger into every sync.
type loggingHandler struct {
	domain.Handler
	Logger domain.Logger
}

func (h *loggingHandler) Invoke(ctx context.Context, b []byte) ([]byte, error) {
	ctx = logevent.NewContext(ctx, h.Logger.Copy())
	return h.Handler.Invoke(ctx, b)
}

// statHandler injects the application stat client into every sync.
type statHandler struct {
	domain.Handler
	Stat domain.Stat
}

func (h *statHandler) Invoke(ctx context.Context, b []byte) ([]byte, error) {
	ctx = xstats.NewContext(ctx, h.Stat)
	return h.Handler.Invoke(ctx, b)
}
