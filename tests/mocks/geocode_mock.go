package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockResolver is a mock implementation of the geocode.Resolver interface
type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) ResolveAddress(ctx context.Context, lat, lon float64) (string, error) {
	args := m.Called(ctx, lat, lon)
	return args.String(0), args.Error(1)
}
