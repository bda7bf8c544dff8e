package syncservice

import (
	"context"
	"os"

	"github.com/asecurityteam/logevent/v2"

	"github.com/asecurityteam/syncservice/pkg/domain"
	"github.com/asecurityteam/syncservice/pkg/metadata"
)

// ServiceConfig holds the settings of a Service.
type ServiceConfig struct {
	ApplicationID string `description:"Identifier of the hosting application. Used to look up its metadata."`
	MetadataKey   string `description:"Metadata key that holds the name of the sync handler."`
	Manifest      string `description:"Path to a YAML application manifest. Overrides the built-in metadata when set."`
	LogLevel      string `description:"Minimum level of the logger used for service lifecycle events."`
}

// Name of the configuration root.
func (*ServiceConfig) Name() string {
	return "sync"
}

// ServiceComponent implements the settings.Component interface.
type ServiceComponent struct {
	// Constructors resolves handler names.
	Constructors domain.ConstructorFetcher
	// Metadata is used when no manifest is configured.
	Metadata domain.MetadataSource
}

// Settings generates a config populated with defaults.
func (*ServiceComponent) Settings() *ServiceConfig {
	return &ServiceConfig{
		MetadataKey: MetadataKey,
		LogLevel:    "INFO",
	}
}

// New constructs a Service from a config.
func (c *ServiceComponent) New(ctx context.Context, conf *ServiceConfig) (*Service, error) {
	var source domain.MetadataSource = c.Metadata
	if conf.Manifest != "" {
		m, err := metadata.LoadManifest(conf.Manifest)
		if err != nil {
			return nil, err
		}
		source = m
	}
	// Logger and Stat stay unset so syncs use the clients of the request
	// that drives them.
	app := domain.AppContext{
		ApplicationID: conf.ApplicationID,
		Metadata:      source,
	}
	svc := NewService(app, c.Constructors)
	svc.logger = logevent.New(logevent.Config{Level: conf.LogLevel, Output: os.Stdout})
	if conf.MetadataKey != "" {
		svc.MetadataKey = conf.MetadataKey
	}
	return svc, nil
}
