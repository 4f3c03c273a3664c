package services

import (
	"strings"

	"github.com/benmeehan/geotagger/internal/constants"
)

// Mode is the direction of a run, fixed once at startup.
type Mode int

const (
	// ModeUnrecognized means neither argument names a GPS table; the run is
	// a no-op.
	ModeUnrecognized Mode = iota
	// ModeInject writes GPS table samples into photos.
	ModeInject
	// ModeHarvest collects GPS samples out of photos into the table.
	ModeHarvest
)

// SelectMode inspects the two positional arguments and decides the run
// direction: whichever argument ends in a table suffix is the table, the
// other is the photo path. A CSV table works in both directions; an NMEA
// track is a load-only source and therefore only selects inject mode.
func SelectMode(arg1, arg2 string) (Mode, string, string) {
	first := strings.ToLower(arg1)
	second := strings.ToLower(arg2)

	switch {
	case strings.HasSuffix(first, constants.CSVSuffix), strings.HasSuffix(first, constants.NMEASuffix):
		return ModeInject, arg1, arg2
	case strings.HasSuffix(second, constants.CSVSuffix):
		return ModeHarvest, arg2, arg1
	default:
		return ModeUnrecognized, "", ""
	}
}
