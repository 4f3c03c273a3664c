package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSelectMode covers direction-agnostic argument ordering.
func TestSelectMode(t *testing.T) {
	cases := []struct {
		name       string
		arg1, arg2 string
		mode       Mode
		table      string
		photos     string
	}{
		{"csv first is inject", "track.csv", "photos", ModeInject, "track.csv", "photos"},
		{"csv second is harvest", "photos", "out.csv", ModeHarvest, "out.csv", "photos"},
		{"nmea first is inject", "track.nmea", "photos", ModeInject, "track.nmea", "photos"},
		{"uppercase suffix recognized", "TRACK.CSV", "photos", ModeInject, "TRACK.CSV", "photos"},
		{"nmea second is not a harvest target", "photos", "out.nmea", ModeUnrecognized, "", ""},
		{"no table argument", "a.txt", "b.jpg", ModeUnrecognized, "", ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			mode, table, photos := SelectMode(c.arg1, c.arg2)
			assert.Equal(t, c.mode, mode)
			assert.Equal(t, c.table, table)
			assert.Equal(t, c.photos, photos)
		})
	}
}
