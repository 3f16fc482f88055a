package passport

// Profile describes one photo format: the output resolution and the
// framing parameters used to derive the crop rectangle from a face box.
type Profile struct {
	Name string `yaml:"name"`

	// OutputWidth and OutputHeight are the final resolution of the
	// encoded photo in pixels.
	OutputWidth  int `yaml:"output_width"`
	OutputHeight int `yaml:"output_height"`

	// AspectRatio is the width-to-height ratio of the crop rectangle.
	AspectRatio float64 `yaml:"aspect_ratio"`

	// FaceHeightRatio is the fraction of the crop height the face
	// should occupy. Passport convention is 0.75.
	FaceHeightRatio float64 `yaml:"face_height_ratio"`

	// HeadroomShift moves the crop upward by this fraction of the face
	// height, leaving more space below the chin than above the head.
	HeadroomShift float64 `yaml:"headroom_shift"`
}

// DefaultProfile returns the standard 3.5x4.5cm passport format.
func DefaultProfile() Profile {
	return Profile{
		Name:            "passport",
		OutputWidth:     350,
		OutputHeight:    450,
		AspectRatio:     0.77,
		FaceHeightRatio: 0.75,
		HeadroomShift:   0.10,
	}
}
