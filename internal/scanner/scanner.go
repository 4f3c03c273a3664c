// Package scanner walks photo arguments and feeds eligible files into the
// work queue.
package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/benmeehan/geotagger/internal/constants"
	"github.com/rs/zerolog"
)

// Enqueuer receives the paths the scanner accepts.
type Enqueuer interface {
	Enqueue(path string)
}

// Scanner classifies file and directory arguments. A path is eligible when
// its lowercased name carries a recognized image extension and the path does
// not contain the thumbnail marker anywhere.
type Scanner struct {
	queue  Enqueuer
	logger zerolog.Logger
}

// NewScanner creates a Scanner feeding the given queue.
func NewScanner(queue Enqueuer, logger zerolog.Logger) *Scanner {
	return &Scanner{
		queue:  queue,
		logger: logger,
	}
}

// Scan classifies a single file directly, or walks a directory recursively
// classifying every regular file it finds. It returns the number of files
// enqueued.
func (s *Scanner) Scan(path string) (int, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}

	if !info.IsDir() {
		if s.Classify(path) {
			return 1, nil
		}
		return 0, nil
	}

	enqueued := 0
	err = filepath.WalkDir(path, func(entry string, d fs.DirEntry, err error) error {
		// An unreadable entry costs that entry, never the whole scan.
		if err != nil {
			s.logger.Error().Err(err).Str("file", entry).Msg("Failed to access path, skipping")
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if s.Classify(entry) {
			enqueued++
		}
		return nil
	})
	return enqueued, err
}

// Classify enqueues an eligible path and reports whether it was accepted.
// Rejections are logged, never silent.
func (s *Scanner) Classify(path string) bool {
	if !Eligible(path) {
		s.logger.Error().Str("file", path).Msg("Unsupported file format")
		return false
	}
	s.queue.Enqueue(path)
	return true
}

// Eligible reports whether a path names a photo the pipeline will process.
func Eligible(path string) bool {
	lowered := strings.ToLower(path)
	if strings.Contains(lowered, constants.ThumbnailMarker) {
		return false
	}
	for _, ext := range constants.ImageExtensions {
		if strings.HasSuffix(lowered, ext) {
			return true
		}
	}
	return false
}
