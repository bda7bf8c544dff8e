// Package constructorfetcher contains implementations of the
// domain.ConstructorFetcher interface that are responsible for resolving
// handler names, as published in application metadata, to the constructors
// the hosting application registered for them. Each implementation in this
// package represents a different registration strategy.
package constructorfetcher
