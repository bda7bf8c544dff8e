package metadata

import (
	"context"

	"github.com/asecurityteam/syncservice/pkg/domain"
)

// Static serves metadata bundles from an in-memory mapping.
type Static struct {
	// Bundles maps application identifiers to their metadata.
	Bundles map[string]domain.Metadata
}

// ApplicationMetadata resolves the application using the internal mapping.
func (s *Static) ApplicationMetadata(ctx context.Context, applicationID string) (domain.Metadata, error) {
	md, ok := s.Bundles[applicationID]
	if !ok {
		return nil, domain.PackageNotFoundError{ApplicationID: applicationID}
	}
	return md, nil
}
