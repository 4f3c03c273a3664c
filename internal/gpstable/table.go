// Package gpstable holds the in-memory GPS sample set and the
// nearest-timestamp lookup used to correlate photos with a track.
package gpstable

import (
	"math"

	"github.com/benmeehan/geotagger/internal/models"
	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/rs/zerolog"
)

// Table is a deduplicated set of GPS samples, safe for concurrent appends
// from multiple workers. Samples are keyed by their full tuple, so inserting
// an identical sample twice leaves a single entry.
type Table struct {
	samples cmap.ConcurrentMap[string, models.GpsSample]
	logger  zerolog.Logger
}

// NewTable creates an empty Table.
func NewTable(logger zerolog.Logger) *Table {
	return &Table{
		samples: cmap.New[models.GpsSample](),
		logger:  logger,
	}
}

// Append inserts a sample into the set. Duplicates collapse silently.
func (t *Table) Append(sample models.GpsSample) {
	t.samples.SetIfAbsent(sample.Key(), sample)
}

// Len returns the number of distinct samples.
func (t *Table) Len() int {
	return t.samples.Count()
}

// Samples returns a point-in-time snapshot of the set. Order is unspecified.
func (t *Table) Samples() []models.GpsSample {
	out := make([]models.GpsSample, 0, t.samples.Count())
	for item := range t.samples.IterBuffered() {
		out = append(out, item.Val)
	}
	return out
}

// FindNearest scans the table for the sample whose timestamp is closest to
// the given one and returns the absolute difference in seconds. An empty
// table yields (+Inf, zero sample, false). Among samples at equal distance
// the winner follows set iteration order and is not deterministic.
func (t *Table) FindNearest(timestamp float64) (float64, models.GpsSample, bool) {
	minDiff := math.Inf(1)
	var nearest models.GpsSample
	found := false

	for item := range t.samples.IterBuffered() {
		diff := math.Abs(timestamp - item.Val.Timestamp)
		if diff < minDiff {
			minDiff = diff
			nearest = item.Val
			found = true
		}
	}

	return minDiff, nearest, found
}
