package gpstable

import (
	"strings"
	"testing"

	"github.com/benmeehan/geotagger/tests/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// TestTable_LoadCSV_SkipsBadRows verifies a header row and malformed rows
// are skipped while valid rows load, duplicates included.
func TestTable_LoadCSV_SkipsBadRows(t *testing.T) {
	content := strings.Join([]string{
		"timestamp,latitude,longitude,altitude",
		"1700000000,35.0,139.0,10",
		"not-a-number,1.0,2.0,3",
		"1700000000,35.0,139.0,10",
		"1700000600,35.1,139.1,12",
		"",
	}, "\n")

	fileClient := new(mocks.MockFileOperations)
	fileClient.On("ReadFile", "track.csv").Return(content, nil)

	table := NewTable(zerolog.Nop())
	err := table.LoadCSV("track.csv", fileClient)

	assert.NoError(t, err)
	assert.Equal(t, 2, table.Len())
}

// TestTable_LoadCSV_SkipsQuoteBrokenRow verifies a row with broken CSV
// quoting only costs that row: the rows around it still load.
func TestTable_LoadCSV_SkipsQuoteBrokenRow(t *testing.T) {
	content := strings.Join([]string{
		"1700000000,35.0,139.0,10",
		"\"broken,1.0,2.0,3",
		"1700000600,35.1,139.1,12",
		"",
	}, "\n")

	fileClient := new(mocks.MockFileOperations)
	fileClient.On("ReadFile", "track.csv").Return(content, nil)

	table := NewTable(zerolog.Nop())
	err := table.LoadCSV("track.csv", fileClient)

	assert.NoError(t, err)
	assert.Equal(t, 2, table.Len())
}

// TestTable_LoadCSV_ReadError verifies a missing table file is a hard error.
func TestTable_LoadCSV_ReadError(t *testing.T) {
	fileClient := new(mocks.MockFileOperations)
	fileClient.On("ReadFile", "missing.csv").Return("", assert.AnError)

	table := NewTable(zerolog.Nop())
	err := table.LoadCSV("missing.csv", fileClient)

	assert.Error(t, err)
}

// TestTable_AppendCSV_AppendsDistinctRows verifies persisting writes one row
// per distinct sample and goes through append, never rewrite.
func TestTable_AppendCSV_AppendsDistinctRows(t *testing.T) {
	table := NewTable(zerolog.Nop())
	table.Append(sample(1700000000))
	table.Append(sample(1700000000))
	table.Append(sample(1700000600))

	var written string
	fileClient := new(mocks.MockFileOperations)
	fileClient.On("AppendFile", "track.csv", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { written = args.String(1) }).
		Return(nil)

	err := table.AppendCSV("track.csv", fileClient)

	assert.NoError(t, err)
	fileClient.AssertCalled(t, "AppendFile", "track.csv", mock.AnythingOfType("string"))

	rows := strings.Split(strings.TrimSpace(written), "\n")
	assert.Len(t, rows, 2)
	assert.Contains(t, written, "1700000000,35.0,139.0,10")
	assert.Contains(t, written, "1700000600,35.0,139.0,10")
}

// TestTable_LoadThenAppend_RoundTrips verifies load-then-persist is
// idempotent on the sample set: duplicates in the input collapse to one
// output row each.
func TestTable_LoadThenAppend_RoundTrips(t *testing.T) {
	content := "1700000000,35.0,139.0,10\n1700000000,35.0,139.0,10\n"

	fileClient := new(mocks.MockFileOperations)
	fileClient.On("ReadFile", "in.csv").Return(content, nil)

	var written string
	fileClient.On("AppendFile", "out.csv", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { written = args.String(1) }).
		Return(nil)

	table := NewTable(zerolog.Nop())
	assert.NoError(t, table.LoadCSV("in.csv", fileClient))
	assert.NoError(t, table.AppendCSV("out.csv", fileClient))

	assert.Equal(t, "1700000000,35.0,139.0,10", strings.TrimSpace(written))
}
