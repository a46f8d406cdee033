// Package services provides domain services that orchestrate order operations
// which need collaborators outside the Order aggregate itself.
//
// The package includes:
//   - OrderLifecycle: opens orders and applies status changes against an injected clock
package services
