package gpstable

import (
	"bufio"
	"strconv"
	"strings"
	"time"

	"github.com/adrianmo/go-nmea"
	"github.com/benmeehan/geotagger/internal/models"
	"github.com/benmeehan/geotagger/pkg/file"
)

// LoadNMEA reads a raw GPS logger track into the set. RMC sentences carry
// the date, time and coordinates of a fix; the altitude of the most recent
// GGA sentence is attached to each sample. Sentences that fail to parse are
// skipped with a warning, the same way malformed CSV rows are.
func (t *Table) LoadNMEA(path string, fileClient file.FileOperations) error {
	content, err := fileClient.ReadFile(path)
	if err != nil {
		return err
	}

	var lastAltitude string
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		sentence, err := nmea.Parse(line)
		if err != nil {
			t.logger.Warn().Err(err).Str("file", path).Msg("Skipping unparsable NMEA sentence")
			continue
		}

		switch s := sentence.(type) {
		case nmea.GGA:
			lastAltitude = strconv.FormatFloat(s.Altitude, 'f', -1, 64)
		case nmea.RMC:
			if s.Validity != nmea.ValidRMC {
				continue
			}
			fix := time.Date(
				2000+s.Date.YY, time.Month(s.Date.MM), s.Date.DD,
				s.Time.Hour, s.Time.Minute, s.Time.Second,
				s.Time.Millisecond*int(time.Millisecond), time.UTC,
			)
			t.Append(models.GpsSample{
				Timestamp: float64(fix.Unix()),
				Latitude:  strconv.FormatFloat(s.Latitude, 'f', -1, 64),
				Longitude: strconv.FormatFloat(s.Longitude, 'f', -1, 64),
				Altitude:  lastAltitude,
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	t.logger.Info().Str("file", path).Int("samples", t.Len()).Msg("Loaded NMEA track")
	return nil
}
