package passport

// LargestFace returns the detection with the largest bounding box area.
// Ties go to the first detection in input order, so the result is
// deterministic for a fixed input.
//
// The caller must handle the zero-detections case before calling; the
// pipeline treats "no face found" as a distinct outcome and never
// invokes the selector with an empty slice.
func LargestFace(faces []Detection) Detection {
	best := faces[0]
	bestArea := best.Box.Area()
	for _, f := range faces[1:] {
		if a := f.Box.Area(); a > bestArea {
			best = f
			bestArea = a
		}
	}
	return best
}
