package mocks

import (
	"github.com/benmeehan/geotagger/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockExifOperations is a mock implementation of the metadata.ExifOperations interface
type MockExifOperations struct {
	mock.Mock
}

func (m *MockExifOperations) ReadRecord(path string) (models.ExifRecord, error) {
	args := m.Called(path)
	return args.Get(0).(models.ExifRecord), args.Error(1)
}

func (m *MockExifOperations) WriteGPS(path string, fields models.GpsWrite) error {
	args := m.Called(path, fields)
	return args.Error(0)
}

func (m *MockExifOperations) Close() error {
	args := m.Called()
	return args.Error(0)
}
