package main

// This example demonstrates how an application registers the sync handlers
// it supports and lets the service pick one through the application metadata.
//
// Run it with:
//
//		SYNCSERVICE_SYNC_APPLICATIONID=com.example.contacts go run ./cmd/example
//
// and trigger a sync with:
//
//		curl --request POST --data '{"account": "me"}' localhost:8080/sync

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/asecurityteam/logevent/v2"
	"github.com/asecurityteam/settings/v2"
	"github.com/aws/aws-lambda-go/lambda"

	syncservice "github.com/asecurityteam/syncservice/pkg"
	"github.com/asecurityteam/syncservice/pkg/constructorfetcher"
	"github.com/asecurityteam/syncservice/pkg/domain"
	"github.com/asecurityteam/syncservice/pkg/metadata"
)

type syncRequest struct {
	Account string `json:"account"`
}

type syncResult struct {
	Account string `json:"account"`
	Synced  int    `json:"synced"`
}

type contactsSynced struct {
	Account string `logevent:"account"`
	Message string `logevent:"message,default=contacts-synced"`
}

func syncContacts(ctx context.Context, req syncRequest) (syncResult, error) {
	account := req.Account
	if account == "" {
		account = "default"
	}
	logevent.FromContext(ctx).Info(contactsSynced{Account: account})
	return syncResult{Account: account}, nil
}

// contactsHandler is the application's sync handler.
type contactsHandler struct {
	*syncservice.Base
}

func newContactsHandler(app domain.AppContext, autoInitialize bool) *contactsHandler {
	return &contactsHandler{
		Base: syncservice.NewBase(app, autoInitialize, lambda.NewHandler(syncContacts)),
	}
}

// registry holds every sync handler this binary can host. The names are
// the values applications may publish under the sync metadata key.
var registry = constructorfetcher.NewRegistry()

func init() {
	registry.MustRegister("contacts", newContactsHandler)
}

func main() {
	// Used when SYNCSERVICE_SYNC_MANIFEST is not set.
	builtin := &metadata.Static{Bundles: map[string]domain.Metadata{
		"com.example.contacts": {syncservice.MetadataKey: "contacts"},
	}}

	// Handle the -h flag and print settings.
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.Usage = func() {}
	err := fs.Parse(os.Args[1:])
	if err == flag.ErrHelp {
		fmt.Println(syncservice.HelpStatic())
		return
	}

	ctx := context.Background()
	source, err := settings.NewEnvSource(os.Environ())
	if err != nil {
		panic(err.Error())
	}
	rt, err := syncservice.New(ctx, source, registry, builtin)
	if err != nil {
		panic(err.Error())
	}
	// Fatal activation errors abort the process.
	if err := rt.Run(); err != nil {
		panic(err.Error())
	}
}
