package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/benmeehan/geotagger/internal/models"
	"github.com/benmeehan/geotagger/tests/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newHarvestFixture(exifClient *mocks.MockExifOperations) *HarvestService {
	return NewHarvestService(
		"out.csv", "photos", 2,
		exifClient, new(mocks.MockFileOperations), zerolog.Nop(),
	)
}

// TestHarvestService_CollectPhoto_AppendsCompleteRecord verifies a photo
// with timestamp and coordinates lands in the table exactly once, even when
// collected twice.
func TestHarvestService_CollectPhoto_AppendsCompleteRecord(t *testing.T) {
	exifClient := new(mocks.MockExifOperations)
	s := newHarvestFixture(exifClient)

	exifClient.On("ReadRecord", "/a/b.jpg").
		Return(models.ExifRecord{Timestamp: 1700000000, Latitude: "35.0", Longitude: "139.0", Altitude: "10"}, nil)

	s.collectPhoto("/a/b.jpg")
	s.collectPhoto("/a/b.jpg")

	assert.Equal(t, 1, s.table.Len())
}

// TestHarvestService_CollectPhoto_SkipsIncompleteRecords verifies photos
// missing a timestamp or a coordinate contribute nothing.
func TestHarvestService_CollectPhoto_SkipsIncompleteRecords(t *testing.T) {
	exifClient := new(mocks.MockExifOperations)
	s := newHarvestFixture(exifClient)

	exifClient.On("ReadRecord", "/a/no_gps.jpg").
		Return(models.ExifRecord{Timestamp: 1700000000}, nil)
	exifClient.On("ReadRecord", "/a/no_lon.jpg").
		Return(models.ExifRecord{Timestamp: 1700000000, Latitude: "35.0"}, nil)
	exifClient.On("ReadRecord", "/a/no_time.jpg").
		Return(models.ExifRecord{Latitude: "35.0", Longitude: "139.0"}, nil)
	exifClient.On("ReadRecord", "/a/corrupt.jpg").
		Return(models.ExifRecord{}, assert.AnError)

	s.collectPhoto("/a/no_gps.jpg")
	s.collectPhoto("/a/no_lon.jpg")
	s.collectPhoto("/a/no_time.jpg")
	s.collectPhoto("/a/corrupt.jpg")

	assert.Equal(t, 0, s.table.Len())
}

// TestHarvestService_Run_PanickingCollaborator verifies a panic while
// reading one photo does not stall the completion barrier or lose the
// samples harvested from other photos.
func TestHarvestService_Run_PanickingCollaborator(t *testing.T) {
	dir := t.TempDir()
	poisoned := filepath.Join(dir, "IMG_0001.jpg")
	healthy := filepath.Join(dir, "IMG_0002.jpg")
	assert.NoError(t, os.WriteFile(poisoned, []byte("x"), 0600))
	assert.NoError(t, os.WriteFile(healthy, []byte("x"), 0600))

	exifClient := new(mocks.MockExifOperations)
	exifClient.On("ReadRecord", poisoned).
		Run(func(mock.Arguments) { panic("exiftool blew up") }).
		Return(models.ExifRecord{}, nil)
	exifClient.On("ReadRecord", healthy).
		Return(models.ExifRecord{Timestamp: 1700000000, Latitude: "35.0", Longitude: "139.0", Altitude: "10"}, nil)

	var written string
	fileClient := new(mocks.MockFileOperations)
	fileClient.On("AppendFile", "out.csv", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { written = args.String(1) }).
		Return(nil)

	s := NewHarvestService("out.csv", dir, 2, exifClient, fileClient, zerolog.Nop())

	assert.NoError(t, s.Run())
	assert.Equal(t, "1700000000,35.0,139.0,10", strings.TrimSpace(written))
}

// TestHarvestService_Run_EndToEnd drives a whole harvest run and checks the
// collected samples are appended to the table file.
func TestHarvestService_Run_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "IMG_0001.jpg")
	second := filepath.Join(dir, "IMG_0002.jpg")
	untagged := filepath.Join(dir, "IMG_0003.jpg")
	for _, path := range []string{first, second, untagged} {
		assert.NoError(t, os.WriteFile(path, []byte("x"), 0600))
	}

	exifClient := new(mocks.MockExifOperations)
	exifClient.On("ReadRecord", first).
		Return(models.ExifRecord{Timestamp: 1700000000, Latitude: "35.0", Longitude: "139.0", Altitude: "10"}, nil)
	exifClient.On("ReadRecord", second).
		Return(models.ExifRecord{Timestamp: 1700000600, Latitude: "35.1", Longitude: "139.1", Altitude: "12"}, nil)
	exifClient.On("ReadRecord", untagged).
		Return(models.ExifRecord{Timestamp: 1700000700}, nil)

	var written string
	fileClient := new(mocks.MockFileOperations)
	fileClient.On("AppendFile", "out.csv", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { written = args.String(1) }).
		Return(nil)

	s := NewHarvestService("out.csv", dir, 4, exifClient, fileClient, zerolog.Nop())

	assert.NoError(t, s.Run())

	rows := strings.Split(strings.TrimSpace(written), "\n")
	assert.Len(t, rows, 2)
	assert.Contains(t, written, "1700000000,35.0,139.0,10")
	assert.Contains(t, written, "1700000600,35.1,139.1,12")
	fileClient.AssertExpectations(t)
}
