package constants

import "time"

const (
	// DefaultWorkerCount is the number of workers draining the photo queue.
	DefaultWorkerCount = 4
	// MaxTimeDiff is the acceptance window between a photo's capture time
	// and the nearest GPS sample.
	MaxTimeDiff = 3600 * time.Second

	// ThumbnailMarker excludes thumbnail files anywhere in a path.
	ThumbnailMarker = "thumb"

	// CSVSuffix marks the persisted GPS table format.
	CSVSuffix = ".csv"
	// NMEASuffix marks a raw GPS logger track, accepted as a load-only source.
	NMEASuffix = ".nmea"
)

// EXIF tag names and the exiftool timestamp layout.
const (
	TagDateTimeOriginal = "DateTimeOriginal"
	TagGPSLatitude      = "GPSLatitude"
	TagGPSLongitude     = "GPSLongitude"
	TagGPSAltitude      = "GPSAltitude"
	TagGPSLatitudeRef   = "GPSLatitudeRef"
	TagGPSLongitudeRef  = "GPSLongitudeRef"

	ExifTimeLayout = "2006:01:02 15:04:05"
)

// ImageExtensions lists the recognized photo file extensions, lowercase.
var ImageExtensions = []string{
	".jpg", ".jpeg", ".png", ".tif", ".tiff", ".raw", ".cr2", ".arw", ".hif", ".dng", ".nef",
}
