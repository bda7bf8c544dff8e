package v1

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/asecurityteam/syncservice/pkg/domain"
)

const (
	invocationTypeHeader          = "X-Sync-Invocation-Type"
	invocationTypeRequestResponse = "RequestResponse"
	invocationTypeEvent           = "Event"
	invocationTypeDryRun          = "DryRun"
	invocationErrorHeader         = "X-Sync-Error"
	invocationErrorTypeHandled    = "Handled"
	invocationErrorTypeUnhandled  = "Unhandled"
)

// bgContext is used to detach the *http.Request context from the http.Handler
// lifecycle. The request context is canceled when the handler returns which
// would also cancel a sync started with the Event invocation type. This keeps
// a reference to the request context for value lookups, such as the logger or
// stat client, and uses context.Background() for everything else.
type bgContext struct {
	context.Context
	Values context.Context
}

func (c *bgContext) Value(key interface{}) interface{} {
	return c.Values.Value(key)
}

// Sync is the transport handle of a sync handler. The request body is the
// sync payload and is passed unchanged to the handler. The
// X-Sync-Invocation-Type header selects how the handler is driven:
//
// -	RequestResponse (default) runs the sync and writes its result.
//
// -	Event runs the sync in the background and responds with 202.
//
// -	DryRun validates the request and responds with 204.
type Sync struct {
	LogFn   domain.LogFn
	StatFn  domain.StatFn
	Handler domain.Handler
}

func (h *Sync) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	fnType := r.Header.Get(invocationTypeHeader)
	if fnType == "" {
		fnType = invocationTypeRequestResponse
	}
	ctx := r.Context()
	b, errRead := io.ReadAll(r.Body)
	if errRead != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(responseFromError(errRead))
		return
	}
	switch fnType {
	case invocationTypeDryRun:
		w.WriteHeader(http.StatusNoContent)
		return
	case invocationTypeEvent:
		ctx = &bgContext{Context: context.Background(), Values: ctx}
		go func() {
			if _, err := h.Handler.Invoke(ctx, b); err != nil {
				h.StatFn(ctx).Count("syncservice.sync.failure", 1)
				h.LogFn(ctx).Error(syncFailed{Reason: err.Error()})
			}
		}()
		w.WriteHeader(http.StatusAccepted)
	case invocationTypeRequestResponse:
		rb, errInvoke := h.Handler.Invoke(ctx, b)
		statusCode := statusFromError(errInvoke)
		if statusCode > 299 {
			w.Header().Set(invocationErrorHeader, invocationErrorTypeHandled)
		}
		if statusCode > 499 {
			w.Header().Set(invocationErrorHeader, invocationErrorTypeUnhandled)
			h.StatFn(ctx).Count("syncservice.sync.failure", 1)
			h.LogFn(ctx).Error(syncFailed{Reason: errInvoke.Error()})
		}
		w.WriteHeader(statusCode)
		if errInvoke != nil {
			rb, _ = json.Marshal(responseFromError(errInvoke))
		}
		if len(rb) > 0 {
			_, _ = w.Write(rb)
		}
	default:
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(syncError{
			Message: fmt.Sprintf("InvocationType %s not valid", fnType),
			Type:    "InvalidParameterValueException",
		})
		return
	}
}
