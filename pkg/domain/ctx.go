package domain

// AppContext is the application context handed to every sync handler
// constructor. It carries the identity of the hosting application and the
// clients a handler needs to do its work.
type AppContext struct {
	// ApplicationID identifies the hosting application. It is the key used
	// to look up the application's metadata bundle.
	ApplicationID string
	// Metadata is the source of application metadata bundles.
	Metadata MetadataSource
	// Logger is an optional application logger. When set, sync
	// invocations receive a copy of it in place of the request logger.
	Logger Logger
	// Stat is an optional application metrics client. When set, sync
	// invocations receive it in place of the request stat client.
	Stat Stat
}
