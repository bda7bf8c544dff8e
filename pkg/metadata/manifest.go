package metadata

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/asecurityteam/syncservice/pkg/domain"
)

// ManifestYAML is the layout of an application manifest file:
//
//	applications:
//	  com.example.app:
//	    metadata:
//	      sync_metadata: exampleHandler
type ManifestYAML struct {
	Applications map[string]*ApplicationYAML `yaml:"applications"`
}

// ApplicationYAML is a single application entry of a manifest.
type ApplicationYAML struct {
	Description string            `yaml:"description,omitempty"`
	Metadata    map[string]string `yaml:"metadata,omitempty"`
}

// Manifest is a MetadataSource backed by a parsed manifest file.
type Manifest struct {
	applications map[string]domain.Metadata
}

// LoadManifest reads and parses a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return ParseManifest(data)
}

// ParseManifest parses a manifest from YAML bytes.
func ParseManifest(data []byte) (*Manifest, error) {
	var y ManifestYAML
	if err := yaml.Unmarshal(data, &y); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	m := &Manifest{applications: make(map[string]domain.Metadata, len(y.Applications))}
	for id, app := range y.Applications {
		if id == "" {
			return nil, fmt.Errorf("manifest contains an application without identifier")
		}
		// An entry with no metadata section is still a known application.
		md := make(domain.Metadata)
		if app != nil {
			for k, v := range app.Metadata {
				md[k] = v
			}
		}
		m.applications[id] = md
	}
	return m, nil
}

// ApplicationMetadata returns the metadata section of the application.
func (m *Manifest) ApplicationMetadata(ctx context.Context, applicationID string) (domain.Metadata, error) {
	md, ok := m.applications[applicationID]
	if !ok {
		return nil, domain.PackageNotFoundError{ApplicationID: applicationID}
	}
	return md, nil
}
