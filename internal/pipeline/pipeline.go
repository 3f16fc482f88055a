// Package pipeline orchestrates one crop request end to end:
// decode, detect, select, compute geometry, extract and re-encode.
package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/photoid/passport-crop/internal/detect"
	"github.com/photoid/passport-crop/internal/imgproc"
	"github.com/photoid/passport-crop/internal/passport"
)

// ErrNoFace is returned when detection ran successfully but found no
// faces. Callers must treat it as a distinct, non-fatal outcome rather
// than a processing failure.
var ErrNoFace = errors.New("no face detected in the uploaded image")

// Result is the outcome of one processed upload.
type Result struct {
	JPEG         []byte
	Region       passport.CropRegion
	Confidence   float64
	OriginalSize int
	RequestID    string
}

// Pipeline processes uploads with a shared detector. Safe for
// concurrent use; every call owns its inputs exclusively and nothing is
// retained between calls.
type Pipeline struct {
	detector    detect.Detector
	jpegQuality int
}

// New creates a pipeline around the given detector.
func New(detector detect.Detector, jpegQuality int) *Pipeline {
	return &Pipeline{
		detector:    detector,
		jpegQuality: jpegQuality,
	}
}

// Process runs the full crop sequence on raw uploaded bytes. Steps run
// strictly in order and each upload is attempted exactly once.
func (p *Pipeline) Process(ctx context.Context, data []byte, profile passport.Profile) (*Result, error) {
	img, _, err := imgproc.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	faces, err := p.detector.DetectFaces(ctx, img)
	if err != nil {
		return nil, fmt.Errorf("running face detection: %w", err)
	}
	if len(faces) == 0 {
		return nil, ErrNoFace
	}

	face := passport.LargestFace(faces)

	bounds := img.Bounds()
	region := passport.CropForFace(face.Box, bounds.Dx(), bounds.Dy(), profile)

	out, err := imgproc.ExtractAndResize(img, region, profile.OutputWidth, profile.OutputHeight, p.jpegQuality)
	if err != nil {
		return nil, err
	}

	return &Result{
		JPEG:         out,
		Region:       region,
		Confidence:   face.Score,
		OriginalSize: len(data),
		RequestID:    uuid.NewString(),
	}, nil
}
