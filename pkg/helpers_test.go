package syncservice

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/asecurityteam/syncservice/pkg/domain"
)

type nopLogger struct{}

func (*nopLogger) Debug(event interface{})                 {}
func (*nopLogger) Info(event interface{})                  {}
func (*nopLogger) Warn(event interface{})                  {}
func (*nopLogger) Error(event interface{})                 {}
func (*nopLogger) SetField(name string, value interface{}) {}
func (logger *nopLogger) Copy() domain.Logger {
	return logger
}

var testLogger = &nopLogger{}

func testLogFn(context.Context) domain.Logger { return testLogger }

type nopStat struct{}

func (*nopStat) Gauge(stat string, value float64, tags ...string)        {}
func (*nopStat) Count(stat string, count float64, tags ...string)        {}
func (*nopStat) Histogram(stat string, value float64, tags ...string)    {}
func (*nopStat) Timing(stat string, value time.Duration, tags ...string) {}
func (*nopStat) AddTags(tags ...string)                                  {}
func (*nopStat) GetTags() []string {
	return []string{}
}

var testStat = &nopStat{}

func testStatFn(context.Context) domain.Stat { return testStat }

const (
	testAppID       = "com.example.app"
	testHandlerName = "contacts"
)

func syncContacts() (string, error) {
	return "synced", nil
}

type contactsHandler struct {
	*Base
}

func newContactsHandler(app domain.AppContext, autoInitialize bool) *contactsHandler {
	return &contactsHandler{Base: NewBase(app, autoInitialize, lambda.NewHandler(syncContacts))}
}

func newContactsHandlerWithError(app domain.AppContext, autoInitialize bool) (*contactsHandler, error) {
	return newContactsHandler(app, autoInitialize), nil
}

func newFailingHandler(domain.AppContext, bool) (*contactsHandler, error) {
	return nil, errors.New("boom")
}

func newPanickingHandler(domain.AppContext, bool) *contactsHandler {
	panic("boom")
}

func newNilHandler(domain.AppContext, bool) *contactsHandler {
	return nil
}

func newContextOnlyHandler(app domain.AppContext) *contactsHandler {
	return newContactsHandler(app, true)
}

func newReversedHandler(autoInitialize bool, app domain.AppContext) *contactsHandler {
	return newContactsHandler(app, autoInitialize)
}

type notAHandler struct{}

func newNotAHandler(domain.AppContext, bool) *notAHandler {
	return &notAHandler{}
}

func newOpaqueHandler(domain.AppContext, bool) interface{} {
	return &notAHandler{}
}

type autoInit bool

func newNamedBoolHandler(app domain.AppContext, autoInitialize autoInit) domain.SyncHandler {
	return newContactsHandler(app, bool(autoInitialize))
}

func newInterfaceHandler(app domain.AppContext, autoInitialize bool) domain.SyncHandler {
	return newContactsHandler(app, autoInitialize)
}

func newTypedNilHandler(domain.AppContext, bool) domain.SyncHandler {
	var h *contactsHandler
	return h
}
