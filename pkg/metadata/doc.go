// Package metadata contains implementations of the domain.MetadataSource
// interface. They stand in for the package manager of the host: given an
// application identifier they return the static metadata the application
// published.
package metadata
