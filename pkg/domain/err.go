package domain

import (
	"errors"
	"fmt"
)

// NotFoundError represents a failed lookup for a resource.
type NotFoundError struct {
	// ID is the key used when looking for the resource.
	ID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("resource (%s) not found", e.ID)
}

// PackageNotFoundError is emitted by a MetadataSource when it has no
// record of the requested application.
type PackageNotFoundError struct {
	ApplicationID string
}

func (e PackageNotFoundError) Error() string {
	return fmt.Sprintf("application (%s) not found", e.ApplicationID)
}

// ConfigurationError indicates the handler name could not be read from the
// application metadata. It is fatal.
type ConfigurationError struct {
	ApplicationID string
	Key           string
	Reason        error
}

func (e ConfigurationError) Error() string {
	if e.Reason == nil {
		return fmt.Sprintf("couldn't obtain metadata key (%s) of application (%s)", e.Key, e.ApplicationID)
	}
	return fmt.Sprintf("couldn't obtain metadata key (%s) of application (%s): %s", e.Key, e.ApplicationID, e.Reason.Error())
}

func (e ConfigurationError) Unwrap() error {
	return e.Reason
}

// ResolutionError indicates the configured handler name is not registered.
// It is fatal.
type ResolutionError struct {
	Name   string
	Reason error
}

func (e ResolutionError) Error() string {
	return fmt.Sprintf("sync handler (%s) could not be resolved", e.Name)
}

func (e ResolutionError) Unwrap() error {
	return e.Reason
}

// ConstructionFailure classifies why a ConstructionError happened.
type ConstructionFailure string

const (
	// ConstructionMissingConstructor means the registered value has no
	// (AppContext, bool) constructor shape.
	ConstructionMissingConstructor ConstructionFailure = "missing constructor"
	// ConstructionInvocationFailed means the constructor returned an
	// error or panicked.
	ConstructionInvocationFailed ConstructionFailure = "invocation failed"
	// ConstructionNotInstantiable means the constructor produced no usable
	// SyncHandler.
	ConstructionNotInstantiable ConstructionFailure = "not instantiable"
)

// ConstructionError indicates a resolved constructor could not produce a
// handler. It is not fatal.
type ConstructionError struct {
	Name    string
	Failure ConstructionFailure
	Reason  error
}

func (e ConstructionError) Error() string {
	if e.Reason == nil {
		return fmt.Sprintf("sync handler (%s) construction failed: %s", e.Name, e.Failure)
	}
	return fmt.Sprintf("sync handler (%s) construction failed: %s: %s", e.Name, e.Failure, e.Reason.Error())
}

func (e ConstructionError) Unwrap() error {
	return e.Reason
}

// UnboundHandlerError is emitted when a bind is requested while no sync
// handler is available.
type UnboundHandlerError struct{}

func (e UnboundHandlerError) Error() string {
	return "no sync handler is bound"
}

// IsFatal reports whether err must abort the hosting process.
func IsFatal(err error) bool {
	var confErr ConfigurationError
	var resErr ResolutionError
	return errors.As(err, &confErr) || errors.As(err, &resErr)
}
