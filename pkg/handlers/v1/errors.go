package v1

import (
	"encoding/json"
	"net/http"
	"reflect"

	"github.com/asecurityteam/syncservice/pkg/domain"
)

// syncError is the JSON object included as the response body for
// exception cases.
type syncError struct {
	Message string `json:"errorMessage"`
	Type    string `json:"errorType"`
}

func responseFromError(err error) syncError {
	errType := reflect.TypeOf(err)
	errTypeName := errType.Name()
	if errType.Kind() == reflect.Ptr {
		errTypeName = errType.Elem().Name()
	}
	return syncError{
		Message: err.Error(),
		Type:    errTypeName,
	}
}

func statusFromError(err error) int {
	switch err.(type) {
	case nil:
		return http.StatusOK
	case *json.InvalidUTF8Error: // nolint
		return http.StatusBadRequest
	case *json.InvalidUnmarshalError:
		return http.StatusBadRequest
	case *json.UnmarshalFieldError: // nolint
		return http.StatusBadRequest
	case *json.UnmarshalTypeError:
		return http.StatusBadRequest
	case *json.SyntaxError:
		return http.StatusBadRequest
	case domain.UnboundHandlerError:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
