// Package imgproc handles image decoding and the crop-and-resize step
// that produces the final photo. JPEG, PNG and WebP uploads are
// supported.
package imgproc

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/disintegration/imaging"
	"github.com/photoid/passport-crop/internal/passport"
	_ "golang.org/x/image/webp"
)

// Decode reads and decodes an uploaded image.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("decoding image: %w", err)
	}
	return img, format, nil
}

// ExtractAndResize cuts the crop region out of the source image, resizes
// it to the requested output resolution and re-encodes it as JPEG.
func ExtractAndResize(img image.Image, region passport.CropRegion, outWidth, outHeight, quality int) ([]byte, error) {
	rect := image.Rect(region.Left, region.Top, region.Left+region.Width, region.Top+region.Height)

	cropped := imaging.Crop(img, rect)
	resized := imaging.Resize(cropped, outWidth, outHeight, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("encoding output image: %w", err)
	}
	return buf.Bytes(), nil
}
