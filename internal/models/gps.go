package models

import (
	"strconv"
	"strings"
)

// GpsSample is a single point of a GPS track. Latitude, longitude and
// altitude are kept as the strings they were read with so a sample
// round-trips through the CSV table byte for byte. Identity is the full
// tuple; the table treats two samples with identical fields as one entry.
type GpsSample struct {
	Timestamp float64
	Latitude  string
	Longitude string
	Altitude  string
}

// Key returns the canonical tuple string used as the sample's set identity.
func (s GpsSample) Key() string {
	return strings.Join([]string{
		strconv.FormatFloat(s.Timestamp, 'f', -1, 64),
		s.Latitude,
		s.Longitude,
		s.Altitude,
	}, ",")
}

// Lat parses the latitude as a decimal degree value.
func (s GpsSample) Lat() (float64, error) {
	return strconv.ParseFloat(s.Latitude, 64)
}

// Lon parses the longitude as a decimal degree value.
func (s GpsSample) Lon() (float64, error) {
	return strconv.ParseFloat(s.Longitude, 64)
}

// ExifRecord holds the capture timestamp and GPS state read from a photo.
// An empty string means the tag was absent from the file.
type ExifRecord struct {
	Timestamp float64
	Latitude  string
	Longitude string
	Altitude  string
}

// HasCoordinates reports whether both latitude and longitude are populated.
func (r ExifRecord) HasCoordinates() bool {
	return r.Latitude != "" && r.Longitude != ""
}

// Sample converts a complete record into a GpsSample.
func (r ExifRecord) Sample() GpsSample {
	return GpsSample{
		Timestamp: r.Timestamp,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Altitude:  r.Altitude,
	}
}

// GpsWrite is the set of EXIF GPS fields written back into a photo.
type GpsWrite struct {
	Latitude     string
	Longitude    string
	Altitude     string
	LatitudeRef  string
	LongitudeRef string
}
