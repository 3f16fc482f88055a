// Package constants provides shared constants used across the codebase.
// Centralizing these values ensures consistency and makes them easier to modify.
package constants

// Detection constants
const (
	// MinFaceSize is the smallest face side length in pixels the cascade will report
	MinFaceSize = 20

	// MaxFaceSize is the largest face side length in pixels the cascade will report
	MaxFaceSize = 2000

	// ShiftFactor controls how much the detection window moves between evaluations
	ShiftFactor = 0.1

	// ScaleFactor controls how much the detection window grows between scales
	ScaleFactor = 1.1

	// ClusterIoU is the intersection-over-union threshold for merging
	// overlapping raw detections into one face
	ClusterIoU = 0.2

	// DefaultQualityThreshold is the minimum pigo quality score for a
	// detection to count as a face
	DefaultQualityThreshold = 5.0

	// ScoreSaturation converts unbounded pigo quality scores to a 0..1
	// confidence via q / (q + ScoreSaturation)
	ScoreSaturation = 10.0
)

// Encoding constants
const (
	// DefaultJPEGQuality is the quality used when re-encoding the cropped photo
	DefaultJPEGQuality = 90
)

// File upload constants
const (
	// MaxUploadSize is the maximum file upload size in bytes (25MB)
	MaxUploadSize = 25 << 20
)
