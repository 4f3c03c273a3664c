// Package metadata wraps exiftool behind a narrow interface: read a photo's
// capture timestamp and GPS state, or write GPS fields back into it.
package metadata

import (
	"errors"
	"fmt"
	"time"

	exiftool "github.com/barasher/go-exiftool"
	"github.com/benmeehan/geotagger/internal/constants"
	"github.com/benmeehan/geotagger/internal/models"
	"github.com/rs/zerolog"
)

// ExifOperations defines the metadata capabilities the pipeline needs.
type ExifOperations interface {
	ReadRecord(path string) (models.ExifRecord, error)
	WriteGPS(path string, fields models.GpsWrite) error
	Close() error
}

// ExifService implements ExifOperations with a single long-lived exiftool
// process shared by all workers; go-exiftool serializes access to it.
type ExifService struct {
	et     *exiftool.Exiftool
	logger zerolog.Logger
}

// NewExifService starts the exiftool process. When overwrite is false,
// exiftool keeps a backup of each original file next to it; when true it
// rewrites files in place.
func NewExifService(overwrite bool, logger zerolog.Logger) (*ExifService, error) {
	opts := []func(*exiftool.Exiftool) error{exiftool.NoPrintConversion()}
	if !overwrite {
		opts = append(opts, exiftool.BackupOriginal())
	}

	et, err := exiftool.NewExiftool(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to start exiftool: %w", err)
	}

	return &ExifService{
		et:     et,
		logger: logger,
	}, nil
}

// ReadRecord extracts the capture timestamp and GPS tags of a photo. A
// missing or unparsable DateTimeOriginal is an error; missing GPS tags are
// returned as empty strings.
func (s *ExifService) ReadRecord(path string) (models.ExifRecord, error) {
	metas := s.et.ExtractMetadata(path)
	if len(metas) == 0 {
		return models.ExifRecord{}, errors.New("exiftool returned no metadata")
	}
	meta := metas[0]
	if meta.Err != nil {
		return models.ExifRecord{}, fmt.Errorf("failed to extract metadata: %w", meta.Err)
	}

	captured, err := meta.GetString(constants.TagDateTimeOriginal)
	if err != nil {
		return models.ExifRecord{}, fmt.Errorf("no capture timestamp: %w", err)
	}
	capturedAt, err := time.ParseInLocation(constants.ExifTimeLayout, captured, time.Local)
	if err != nil {
		return models.ExifRecord{}, fmt.Errorf("failed to parse capture timestamp %q: %w", captured, err)
	}

	record := models.ExifRecord{
		Timestamp: float64(capturedAt.Unix()),
		Latitude:  s.optionalTag(meta, constants.TagGPSLatitude),
		Longitude: s.optionalTag(meta, constants.TagGPSLongitude),
		Altitude:  s.optionalTag(meta, constants.TagGPSAltitude),
	}

	s.logger.Info().
		Str("file", path).
		Time("captured_at", capturedAt).
		Str("latitude", record.Latitude).
		Str("longitude", record.Longitude).
		Msg("Read photo metadata")
	return record, nil
}

// WriteGPS writes coordinate tags into a photo.
func (s *ExifService) WriteGPS(path string, fields models.GpsWrite) error {
	meta := exiftool.EmptyFileMetadata()
	meta.File = path
	meta.SetString(constants.TagGPSLatitude, fields.Latitude)
	meta.SetString(constants.TagGPSLongitude, fields.Longitude)
	meta.SetString(constants.TagGPSAltitude, fields.Altitude)
	meta.SetString(constants.TagGPSLatitudeRef, fields.LatitudeRef)
	meta.SetString(constants.TagGPSLongitudeRef, fields.LongitudeRef)

	metas := []exiftool.FileMetadata{meta}
	s.et.WriteMetadata(metas)
	if metas[0].Err != nil {
		return fmt.Errorf("failed to write GPS tags: %w", metas[0].Err)
	}
	return nil
}

// Close stops the exiftool process.
func (s *ExifService) Close() error {
	return s.et.Close()
}

// optionalTag returns a tag's string value, or empty when absent.
func (s *ExifService) optionalTag(meta exiftool.FileMetadata, tag string) string {
	value, err := meta.GetString(tag)
	if err != nil {
		return ""
	}
	return value
}
