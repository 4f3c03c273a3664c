package gpstable

import (
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/benmeehan/geotagger/internal/models"
	"github.com/benmeehan/geotagger/pkg/file"
	"github.com/gocarina/gocsv"
)

// csvRow mirrors the persisted table layout: one sample per row, no header.
type csvRow struct {
	Timestamp string `csv:"timestamp"`
	Latitude  string `csv:"latitude"`
	Longitude string `csv:"longitude"`
	Altitude  string `csv:"altitude"`
}

// LoadCSV reads a persisted GPS table into the set. Any row that does not
// parse, a header row included, is skipped with a warning and loading
// continues.
func (t *Table) LoadCSV(path string, fileClient file.FileOperations) error {
	content, err := fileClient.ReadFile(path)
	if err != nil {
		return err
	}

	// The table is strictly one sample per line, so every line parses as its
	// own CSV record. A malformed line then costs exactly that line instead
	// of derailing the reader into the rows that follow it.
	for rowNum, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		row, err := csv.NewReader(strings.NewReader(line)).Read()
		if err != nil {
			t.logger.Warn().Err(err).Str("file", path).Int("row", rowNum+1).Msg("Skipping malformed GPS table row")
			continue
		}
		if len(row) < 4 {
			t.logger.Warn().Str("file", path).Int("row", rowNum+1).Msg("Skipping short GPS table row")
			continue
		}
		timestamp, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			t.logger.Warn().Err(err).Str("file", path).Int("row", rowNum+1).Msg("Skipping unparsable GPS table row")
			continue
		}
		t.Append(models.GpsSample{
			Timestamp: timestamp,
			Latitude:  row[1],
			Longitude: row[2],
			Altitude:  row[3],
		})
	}

	t.logger.Info().Str("file", path).Int("samples", t.Len()).Msg("Loaded GPS table")
	return nil
}

// AppendCSV appends the current sample set to the persisted table. Prior
// file contents are kept untouched; repeated runs against the same file
// accumulate rows.
func (t *Table) AppendCSV(path string, fileClient file.FileOperations) error {
	samples := t.Samples()
	rows := make([]csvRow, 0, len(samples))
	for _, sample := range samples {
		rows = append(rows, csvRow{
			Timestamp: strconv.FormatFloat(sample.Timestamp, 'f', -1, 64),
			Latitude:  sample.Latitude,
			Longitude: sample.Longitude,
			Altitude:  sample.Altitude,
		})
	}

	var buf strings.Builder
	if err := gocsv.MarshalWithoutHeaders(&rows, &buf); err != nil {
		return err
	}

	if err := fileClient.AppendFile(path, buf.String()); err != nil {
		return err
	}

	t.logger.Info().Str("file", path).Int("samples", len(rows)).Msg("Persisted GPS table")
	return nil
}
