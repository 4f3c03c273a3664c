package services

import (
	"github.com/benmeehan/geotagger/internal/gpstable"
	"github.com/benmeehan/geotagger/internal/scanner"
	"github.com/benmeehan/geotagger/internal/utils"
	"github.com/benmeehan/geotagger/pkg/file"
	"github.com/benmeehan/geotagger/pkg/metadata"
	"github.com/rs/zerolog"
)

// HarvestService reads GPS data out of tagged photos and appends the
// collected samples to a persisted CSV table. Photos without a complete
// timestamp and coordinate set contribute nothing.
type HarvestService struct {
	// Configuration fields
	tablePath  string
	photosPath string
	workers    int

	// Dependencies
	exifClient metadata.ExifOperations
	fileClient file.FileOperations
	logger     zerolog.Logger

	// Internal state management
	table *gpstable.Table
	queue *utils.TaskQueue
}

// NewHarvestService creates a new HarvestService instance with the provided configuration.
func NewHarvestService(tablePath, photosPath string, workers int, exifClient metadata.ExifOperations,
	fileClient file.FileOperations, logger zerolog.Logger) *HarvestService {
	return &HarvestService{
		tablePath:  tablePath,
		photosPath: photosPath,
		workers:    workers,
		exifClient: exifClient,
		fileClient: fileClient,
		logger:     logger,
		table:      gpstable.NewTable(logger),
		queue:      utils.NewTaskQueue(),
	}
}

// Run fills the queue, drains it with a worker pool and then appends the
// harvested samples to the table file. The file's prior contents are kept.
func (s *HarvestService) Run() error {
	photoScanner := scanner.NewScanner(s.queue, s.logger)
	enqueued, err := photoScanner.Scan(s.photosPath)
	if err != nil {
		return err
	}
	s.logger.Info().Int("photos", enqueued).Int("workers", s.workers).Msg("Starting GPS harvest")

	pool := utils.NewWorkerPool(s.workers, s.worker)
	s.queue.Wait()
	pool.Join()

	return s.table.AppendCSV(s.tablePath, s.fileClient)
}

// worker drains the queue until it is empty, marking every dequeued photo
// done exactly once.
func (s *HarvestService) worker() {
	for {
		path, ok := s.queue.TryDequeue()
		if !ok {
			return
		}
		s.process(path)
	}
}

// process collects one photo, releasing the completion barrier in a defer so
// a panicking collaborator cannot leak the pending count.
func (s *HarvestService) process(path string) {
	defer s.queue.TaskDone()
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().Interface("panic", r).Str("file", path).Msg("Recovered from panic while collecting photo")
		}
	}()
	s.collectPhoto(path)
}

// collectPhoto appends a photo's GPS sample to the table when the record is
// complete. Concurrent appends are safe; duplicates collapse.
func (s *HarvestService) collectPhoto(path string) {
	record, err := s.exifClient.ReadRecord(path)
	if err != nil {
		s.logger.Error().Err(err).Str("file", path).Msg("Failed to read EXIF")
		return
	}

	if record.Timestamp == 0 || !record.HasCoordinates() {
		s.logger.Debug().Str("file", path).Msg("Photo has no complete GPS record, skipping")
		return
	}

	s.table.Append(record.Sample())
}
