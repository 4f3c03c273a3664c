// Package geocode resolves GPS coordinates to human-readable addresses for
// diagnostic output. Addresses are never written into photos.
package geocode

import "context"

// Resolver converts a coordinate pair into an address string.
type Resolver interface {
	ResolveAddress(ctx context.Context, lat, lon float64) (string, error)
}

// NopResolver is used when no geocoding API key is configured. It resolves
// nothing and lets the pipeline skip address diagnostics.
type NopResolver struct{}

// NewNopResolver creates a NopResolver.
func NewNopResolver() *NopResolver {
	return &NopResolver{}
}

// ResolveAddress always returns an empty address.
func (n *NopResolver) ResolveAddress(ctx context.Context, lat, lon float64) (string, error) {
	return "", nil
}
