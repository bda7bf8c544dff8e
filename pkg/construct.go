package syncservice

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/asecurityteam/syncservice/pkg/domain"
)

var (
	appContextType  = reflect.TypeOf(domain.AppContext{})
	syncHandlerType = reflect.TypeOf((*domain.SyncHandler)(nil)).Elem()
	errorType       = reflect.TypeOf((*error)(nil)).Elem()
	boolType        = reflect.TypeOf(true)
)

// discover reads the handler name from the application metadata, resolves
// it to a constructor and calls it. Failures to read the name produce a
// ConfigurationError and unknown names a ResolutionError. Anything that goes
// wrong after that is a ConstructionError.
func (s *Service) discover(ctx context.Context) (string, domain.SyncHandler, error) {
	key := s.metadataKey()
	if s.App.Metadata == nil {
		return "", nil, domain.ConfigurationError{
			ApplicationID: s.App.ApplicationID,
			Key:           key,
			Reason:        errors.New("no metadata source"),
		}
	}
	md, err := s.App.Metadata.ApplicationMetadata(ctx, s.App.ApplicationID)
	if err != nil {
		return "", nil, domain.ConfigurationError{ApplicationID: s.App.ApplicationID, Key: key, Reason: err}
	}
	name := md[key]
	if name == "" {
		return "", nil, domain.ConfigurationError{ApplicationID: s.App.ApplicationID, Key: key}
	}
	if s.Constructors == nil {
		return name, nil, domain.ResolutionError{Name: name, Reason: errors.New("no constructors registered")}
	}
	c, err := s.Constructors.FetchConstructor(ctx, name)
	if err != nil {
		return name, nil, domain.ResolutionError{Name: name, Reason: err}
	}
	h, err := construct(name, c, s.App, true)
	return name, h, err
}

// construct calls c with (app, autoInitialize) after checking that it has
// one of the accepted constructor shapes.
func construct(name string, c domain.Constructor, app domain.AppContext, autoInitialize bool) (h domain.SyncHandler, err error) {
	v := reflect.ValueOf(c)
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		return nil, domain.ConstructionError{
			Name:    name,
			Failure: domain.ConstructionMissingConstructor,
			Reason:  fmt.Errorf("%T is not a constructor", c),
		}
	}
	t := v.Type()
	if !acceptsAppContext(t) || !returnsHandler(t) {
		return nil, domain.ConstructionError{
			Name:    name,
			Failure: domain.ConstructionMissingConstructor,
			Reason:  fmt.Errorf("%s does not match func(domain.AppContext, bool) (domain.SyncHandler, error)", t),
		}
	}
	if t.Out(0).Kind() != reflect.Interface && !t.Out(0).Implements(syncHandlerType) {
		return nil, domain.ConstructionError{
			Name:    name,
			Failure: domain.ConstructionNotInstantiable,
			Reason:  fmt.Errorf("%s does not implement domain.SyncHandler", t.Out(0)),
		}
	}

	defer func() {
		if r := recover(); r != nil {
			h = nil
			err = domain.ConstructionError{
				Name:    name,
				Failure: domain.ConstructionInvocationFailed,
				Reason:  fmt.Errorf("panic: %v", r),
			}
		}
	}()
	out := v.Call([]reflect.Value{
		reflect.ValueOf(app),
		reflect.ValueOf(autoInitialize),
	})
	if len(out) == 2 && !out[1].IsNil() {
		return nil, domain.ConstructionError{
			Name:    name,
			Failure: domain.ConstructionInvocationFailed,
			Reason:  out[1].Interface().(error),
		}
	}
	if isNil(out[0]) {
		return nil, domain.ConstructionError{Name: name, Failure: domain.ConstructionNotInstantiable}
	}
	h, ok := out[0].Interface().(domain.SyncHandler)
	if !ok {
		return nil, domain.ConstructionError{
			Name:    name,
			Failure: domain.ConstructionNotInstantiable,
			Reason:  fmt.Errorf("%T does not implement domain.SyncHandler", out[0].Interface()),
		}
	}
	// An interface result may still hold a nil pointer.
	if isNil(reflect.ValueOf(h)) {
		return nil, domain.ConstructionError{
			Name:    name,
			Failure: domain.ConstructionNotInstantiable,
			Reason:  fmt.Errorf("%T is nil", h),
		}
	}
	return h, nil
}

func acceptsAppContext(t reflect.Type) bool {
	return t.NumIn() == 2 && !t.IsVariadic() &&
		t.In(0) == appContextType &&
		t.In(1) == boolType
}

func returnsHandler(t reflect.Type) bool {
	switch t.NumOut() {
	case 1:
		return true
	case 2:
		return t.Out(1) == errorType
	default:
		return false
	}
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}
