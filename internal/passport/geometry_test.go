package passport

import (
	"math"
	"testing"
)

func TestCropForFace(t *testing.T) {
	p := DefaultProfile()

	tests := []struct {
		name     string
		box      BoundingBox
		imgW     int
		imgH     int
		expected CropRegion
	}{
		{
			name: "centered face with room on all sides",
			box:  BoundingBox{X: 100, Y: 100, Width: 100, Height: 100},
			imgW: 400,
			imgH: 400,
			// targetHeight=133.33, targetWidth=102.67, centered at
			// (150,150), shifted up by 10
			expected: CropRegion{Left: 98, Top: 73, Width: 102, Height: 133},
		},
		{
			name: "face touching top-left corner clamps to origin",
			box:  BoundingBox{X: 0, Y: 0, Width: 50, Height: 50},
			imgW: 100,
			imgH: 100,
			expected: CropRegion{Left: 0, Top: 0, Width: 51, Height: 66},
		},
		{
			name: "face near right edge translates left",
			box:  BoundingBox{X: 340, Y: 100, Width: 60, Height: 60},
			imgW: 400,
			imgH: 300,
			expected: CropRegion{Left: 338, Top: 84, Width: 61, Height: 80},
		},
		{
			name: "face near bottom edge translates up",
			box:  BoundingBox{X: 100, Y: 250, Width: 80, Height: 80},
			imgW: 400,
			imgH: 300,
			expected: CropRegion{Left: 98, Top: 193, Width: 82, Height: 106},
		},
		{
			name: "face larger than image caps to full image",
			box:  BoundingBox{X: 10, Y: 10, Width: 200, Height: 200},
			imgW: 150,
			imgH: 150,
			// Target rectangle exceeds the image in both dimensions:
			// the translation clamp leaves a negative origin which the
			// final step floors to zero while width/height are capped
			// independently. Off-center by construction.
			expected: CropRegion{Left: 0, Top: 0, Width: 150, Height: 150},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CropForFace(tt.box, tt.imgW, tt.imgH, p)
			if got != tt.expected {
				t.Errorf("CropForFace(%+v, %d, %d) = %+v, want %+v",
					tt.box, tt.imgW, tt.imgH, got, tt.expected)
			}
		})
	}
}

func TestCropForFace_Idempotent(t *testing.T) {
	p := DefaultProfile()
	box := BoundingBox{X: 33, Y: 47, Width: 118, Height: 121}

	first := CropForFace(box, 640, 480, p)
	second := CropForFace(box, 640, 480, p)

	if first != second {
		t.Errorf("expected identical results, got %+v and %+v", first, second)
	}
}

func TestCropForFace_InBoundsInvariant(t *testing.T) {
	p := DefaultProfile()
	const imgW, imgH = 800, 600

	// Sweep face boxes across the image, including positions hugging
	// every edge. Whatever the inputs, the region must stay inside the
	// image.
	for x := 0.0; x <= 700; x += 70 {
		for y := 0.0; y <= 500; y += 50 {
			for size := 40.0; size <= 320; size *= 2 {
				box := BoundingBox{X: x, Y: y, Width: size, Height: size}
				r := CropForFace(box, imgW, imgH, p)

				if r.Left < 0 || r.Top < 0 {
					t.Fatalf("box %+v: negative origin %+v", box, r)
				}
				if r.Left+r.Width > imgW {
					t.Fatalf("box %+v: right edge out of bounds %+v", box, r)
				}
				if r.Top+r.Height > imgH {
					t.Fatalf("box %+v: bottom edge out of bounds %+v", box, r)
				}
			}
		}
	}
}

func TestCropForFace_AspectRatioPreserved(t *testing.T) {
	p := DefaultProfile()

	// When the target rectangle fits inside the image, the output ratio
	// must match the profile up to floor rounding on each dimension.
	box := BoundingBox{X: 200, Y: 150, Width: 90, Height: 90}
	r := CropForFace(box, 800, 600, p)

	ratio := float64(r.Width) / float64(r.Height)
	// Flooring each side independently can move the ratio by at most
	// roughly 1/height.
	tolerance := 1.0/float64(r.Height) + 1.0/float64(r.Width)
	if math.Abs(ratio-p.AspectRatio) > tolerance {
		t.Errorf("ratio = %.4f, want %.4f within %.4f", ratio, p.AspectRatio, tolerance)
	}
}
