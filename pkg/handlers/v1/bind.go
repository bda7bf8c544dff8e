package v1

import (
	"encoding/json"
	"net/http"

	"github.com/asecurityteam/syncservice/pkg/domain"
)

// Bind is the entry point the host calls to reach the sync handler. Each
// request is a bind request: the Binder resolves it to a transport handle
// which then serves the same request.
type Bind struct {
	LogFn  domain.LogFn
	StatFn domain.StatFn
	Binder domain.Binder
}

func (h *Bind) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	handle, err := h.Binder.OnBind(r.Context(), r)
	if err != nil {
		if _, ok := err.(domain.UnboundHandlerError); ok {
			h.StatFn(r.Context()).Count("syncservice.bind.unbound", 1)
		}
		h.LogFn(r.Context()).Error(bindFailed{Reason: err.Error()})
		w.WriteHeader(statusFromError(err))
		_ = json.NewEncoder(w).Encode(responseFromError(err))
		return
	}
	handle.ServeHTTP(w, r)
}
