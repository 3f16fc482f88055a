package handlers

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/photoid/passport-crop/internal/config"
	"github.com/photoid/passport-crop/internal/passport"
	"github.com/photoid/passport-crop/internal/pipeline"
)

// stubProcessor implements Processor with canned results.
type stubProcessor struct {
	result  *pipeline.Result
	err     error
	calls   int
	profile passport.Profile
}

func (s *stubProcessor) Process(ctx context.Context, data []byte, profile passport.Profile) (*pipeline.Result, error) {
	s.calls++
	s.profile = profile
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

// testConfig creates a minimal config for testing
func testConfig() *config.Config {
	return &config.Config{
		Web: config.WebConfig{MaxUploadSize: 25 << 20},
		Formats: config.FormatsConfig{
			Formats: []passport.Profile{passport.DefaultProfile()},
		},
	}
}

// testJPEGBytes returns a small valid JPEG payload.
func testJPEGBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.Set(x, y, color.RGBA{A: 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// multipartUpload builds a multipart request body with one file field.
func multipartUpload(t *testing.T, field string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, "photo.jpg")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatal(err)
	}
	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}
	return &body, writer.FormDataContentType()
}

// doCropRequest runs one request against a crop handler and returns the recorder.
func doCropRequest(t *testing.T, handler *CropHandler, url string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, url, body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.Crop(rec, req)
	return rec
}
