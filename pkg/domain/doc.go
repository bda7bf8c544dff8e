// Package domain is a container of the types and interfaces shared by the
// packages of the sync service: the sync handler contract, the constructor
// and metadata lookup components, and the application context handed to
// handler constructors.
//
// This package is also the container for all domain errors. Each error here
// represents a condition that crosses an interface boundary, and the
// classification of which errors must abort the hosting process lives next
// to them.
//
// Apart from the error types and IsFatal, this package holds no executable
// code. Because the errors do carry code they have corresponding tests.
package domain

//go:generate mockgen -destination ../mock_domain_test.go -package syncservice github.com/asecurityteam/syncservice/pkg/domain MetadataSource,ConstructorFetcher,SyncHandler
//go:generate mockgen -destination ../handlers/v1/mock_domain_test.go -package v1 github.com/asecurityteam/syncservice/pkg/domain Handler,Binder
