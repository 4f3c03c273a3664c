package services

import (
	"context"
	"strings"
	"time"

	"github.com/benmeehan/geotagger/internal/constants"
	"github.com/benmeehan/geotagger/internal/gpstable"
	"github.com/benmeehan/geotagger/internal/models"
	"github.com/benmeehan/geotagger/internal/scanner"
	"github.com/benmeehan/geotagger/internal/utils"
	"github.com/benmeehan/geotagger/pkg/file"
	"github.com/benmeehan/geotagger/pkg/geocode"
	"github.com/benmeehan/geotagger/pkg/metadata"
	"github.com/rs/zerolog"
)

// InjectService loads a GPS table and writes the best-matching sample into
// every photo that lacks coordinates. Photos whose nearest sample is more
// than an hour away are left untouched.
type InjectService struct {
	// Configuration fields
	tablePath  string
	photosPath string
	workers    int

	// Dependencies
	exifClient metadata.ExifOperations
	geocoder   geocode.Resolver
	fileClient file.FileOperations
	logger     zerolog.Logger

	// Internal state management
	table *gpstable.Table
	queue *utils.TaskQueue
}

// NewInjectService creates a new InjectService instance with the provided configuration.
func NewInjectService(tablePath, photosPath string, workers int, exifClient metadata.ExifOperations,
	geocoder geocode.Resolver, fileClient file.FileOperations, logger zerolog.Logger) *InjectService {
	return &InjectService{
		tablePath:  tablePath,
		photosPath: photosPath,
		workers:    workers,
		exifClient: exifClient,
		geocoder:   geocoder,
		fileClient: fileClient,
		logger:     logger,
		table:      gpstable.NewTable(logger),
		queue:      utils.NewTaskQueue(),
	}
}

// Run loads the table, fills the queue and drains it with a worker pool.
// Per-photo failures are logged and never abort the run.
func (s *InjectService) Run() error {
	if strings.HasSuffix(strings.ToLower(s.tablePath), constants.NMEASuffix) {
		if err := s.table.LoadNMEA(s.tablePath, s.fileClient); err != nil {
			return err
		}
	} else {
		if err := s.table.LoadCSV(s.tablePath, s.fileClient); err != nil {
			return err
		}
	}

	photoScanner := scanner.NewScanner(s.queue, s.logger)
	enqueued, err := photoScanner.Scan(s.photosPath)
	if err != nil {
		return err
	}
	s.logger.Info().Int("photos", enqueued).Int("workers", s.workers).Msg("Starting GPS injection")

	pool := utils.NewWorkerPool(s.workers, s.worker)
	s.queue.Wait()
	pool.Join()
	return nil
}

// worker drains the queue until it is empty. Every dequeued photo is marked
// done exactly once, whether tagging succeeded or not.
func (s *InjectService) worker() {
	for {
		path, ok := s.queue.TryDequeue()
		if !ok {
			return
		}
		s.process(path)
	}
}

// process runs the tagging policy for one photo. The completion barrier is
// released in a defer so even a panicking collaborator cannot leak the
// pending count; the panic itself becomes a logged per-file error.
func (s *InjectService) process(path string) {
	defer s.queue.TaskDone()
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().Interface("panic", r).Str("file", path).Msg("Recovered from panic while tagging photo")
		}
	}()
	s.tagPhoto(path)
}

// tagPhoto applies the injection policy to a single photo.
func (s *InjectService) tagPhoto(path string) {
	record, err := s.exifClient.ReadRecord(path)
	if err != nil {
		s.logger.Error().Err(err).Str("file", path).Msg("Failed to read EXIF")
		return
	}

	// Never overwrite existing GPS data.
	if record.HasCoordinates() {
		s.logger.Debug().Str("file", path).Msg("Photo already has GPS data, skipping")
		return
	}

	diff, sample, found := s.table.FindNearest(record.Timestamp)
	if !found {
		s.logger.Debug().Str("file", path).Msg("GPS table is empty, skipping")
		return
	}

	sampleTime := time.Unix(int64(sample.Timestamp), 0)
	if diff > constants.MaxTimeDiff.Seconds() {
		s.logger.Error().
			Str("file", path).
			Float64("diff_seconds", diff).
			Time("nearest_sample", sampleTime).
			Msgf("Time diff %.0f more than %.0f, match rejected", diff, constants.MaxTimeDiff.Seconds())
		return
	}

	lat, err := sample.Lat()
	if err != nil {
		s.logger.Error().Err(err).Str("file", path).Msg("Unparsable latitude in GPS table")
		return
	}
	lon, err := sample.Lon()
	if err != nil {
		s.logger.Error().Err(err).Str("file", path).Msg("Unparsable longitude in GPS table")
		return
	}

	s.logger.Info().
		Str("file", path).
		Time("sample_time", sampleTime).
		Str("latitude", sample.Latitude).
		Str("longitude", sample.Longitude).
		Msg("Matched GPS sample")

	// Address lookup is diagnostic only; a failure never blocks the write.
	if address, err := s.geocoder.ResolveAddress(context.Background(), lat, lon); err != nil {
		s.logger.Warn().Err(err).Str("file", path).Msg("Failed to resolve address")
	} else if address != "" {
		s.logger.Info().Str("file", path).Str("address", address).Msg("Resolved address")
	}

	write := models.GpsWrite{
		Latitude:     sample.Latitude,
		Longitude:    sample.Longitude,
		Altitude:     sample.Altitude,
		LatitudeRef:  HemisphereLat(lat),
		LongitudeRef: HemisphereLon(lon),
	}
	if err := s.exifClient.WriteGPS(path, write); err != nil {
		s.logger.Error().Err(err).Str("file", path).Msg("Failed to write GPS tags")
		return
	}

	s.logger.Info().Str("file", path).Msg("Done")
}

// HemisphereLat derives the latitude reference. The comparison is strictly
// greater than zero, so the equator itself resolves to "S".
func HemisphereLat(lat float64) string {
	if lat > 0 {
		return "N"
	}
	return "S"
}

// HemisphereLon derives the longitude reference. The comparison is strictly
// greater than zero, so the prime meridian itself resolves to "W".
func HemisphereLon(lon float64) string {
	if lon > 0 {
		return "E"
	}
	return "W"
}
