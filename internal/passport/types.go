// Package passport provides the core geometry for passport-style photo
// cropping: selecting the principal face from a set of detections and
// mapping its bounding box to a crop rectangle that follows passport
// framing conventions.
package passport

// BoundingBox is an axis-aligned rectangle in source-image pixel
// coordinates, origin top-left.
type BoundingBox struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Area returns the box area in square pixels.
func (b BoundingBox) Area() float64 {
	return b.Width * b.Height
}

// Detection is a single face reported by a detector. Score is the
// detector's confidence in the 0..1 range and is carried through as
// metadata only; it plays no role in face selection.
type Detection struct {
	Box   BoundingBox
	Score float64
}

// CropRegion is the pixel rectangle extracted from the source image.
// A region produced by CropForFace always lies inside the source image:
// 0 <= Left, 0 <= Top, Left+Width <= imageWidth, Top+Height <= imageHeight.
type CropRegion struct {
	Left   int
	Top    int
	Width  int
	Height int
}
