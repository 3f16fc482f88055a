package passport

import "math"

// CropForFace maps a face bounding box to a crop rectangle for the given
// profile. Pure function: no I/O, no randomness, identical inputs always
// produce identical output.
//
// The crop height is chosen so the face fills FaceHeightRatio of it, the
// width follows from AspectRatio, and the rectangle is centered on the
// face and then shifted up by HeadroomShift of the face height. When the
// rectangle runs past an image edge it is translated back inside, never
// shrunk; the clamps are applied in a fixed order (left, top, right,
// bottom) and later clamps see the result of earlier ones.
//
// When the target rectangle is larger than the image itself the
// translation clamp leaves a negative origin, which the final max/min
// step caps independently: the output is still fully in-bounds but is no
// longer centered on the face and its aspect ratio may be truncated.
// That behavior is kept intact for compatibility with existing outputs;
// see DESIGN.md for the alternative that was considered and rejected.
func CropForFace(box BoundingBox, imageWidth, imageHeight int, p Profile) CropRegion {
	cx := box.X + box.Width/2
	cy := box.Y + box.Height/2

	targetHeight := box.Height / p.FaceHeightRatio
	targetWidth := targetHeight * p.AspectRatio

	cropX := cx - targetWidth/2
	cropY := cy - targetHeight/2 - box.Height*p.HeadroomShift

	w := float64(imageWidth)
	h := float64(imageHeight)

	if cropX < 0 {
		cropX = 0
	}
	if cropY < 0 {
		cropY = 0
	}
	if cropX+targetWidth > w {
		cropX = w - targetWidth
	}
	if cropY+targetHeight > h {
		cropY = h - targetHeight
	}

	return CropRegion{
		Left:   int(math.Max(0, math.Floor(cropX))),
		Top:    int(math.Max(0, math.Floor(cropY))),
		Width:  int(math.Min(w, math.Floor(targetWidth))),
		Height: int(math.Min(h, math.Floor(targetHeight))),
	}
}
