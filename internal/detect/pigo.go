package detect

import (
	"context"
	"fmt"
	"image"
	"os"

	pigo "github.com/esimov/pigo/core"
	"github.com/photoid/passport-crop/internal/config"
	"github.com/photoid/passport-crop/internal/constants"
	"github.com/photoid/passport-crop/internal/passport"
)

// PigoDetector runs the pigo cascade classifier. The unpacked cascade is
// read-only after construction and shared by all requests.
type PigoDetector struct {
	classifier       *pigo.Pigo
	minSize          int
	maxSize          int
	qualityThreshold float64
}

// NewPigoDetector loads and unpacks the facefinder cascade from
// cfg.ModelPath. A missing or corrupt model file is a startup failure;
// the caller is expected to treat the returned error as fatal.
func NewPigoDetector(cfg config.DetectorConfig) (*PigoDetector, error) {
	modelData, err := os.ReadFile(cfg.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("reading cascade file %s: %w", cfg.ModelPath, err)
	}

	classifier, err := pigo.NewPigo().Unpack(modelData)
	if err != nil {
		return nil, fmt.Errorf("unpacking cascade file %s: %w", cfg.ModelPath, err)
	}

	return &PigoDetector{
		classifier:       classifier,
		minSize:          cfg.MinFaceSize,
		maxSize:          cfg.MaxFaceSize,
		qualityThreshold: cfg.QualityThreshold,
	}, nil
}

// DetectFaces runs the cascade over the image and returns every face
// above the quality threshold. Raw detections are clustered by IoU so
// overlapping windows collapse into one face.
func (d *PigoDetector) DetectFaces(ctx context.Context, img image.Image) ([]passport.Detection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src := pigo.ImgToNRGBA(img)
	pixels := pigo.RgbToGrayscale(src)
	cols, rows := src.Bounds().Max.X, src.Bounds().Max.Y

	cParams := pigo.CascadeParams{
		MinSize:     d.minSize,
		MaxSize:     d.maxSize,
		ShiftFactor: constants.ShiftFactor,
		ScaleFactor: constants.ScaleFactor,

		ImageParams: pigo.ImageParams{
			Pixels: pixels,
			Rows:   rows,
			Cols:   cols,
			Dim:    cols,
		},
	}

	dets := d.classifier.RunCascade(cParams, 0.0)
	dets = d.classifier.ClusterDetections(dets, constants.ClusterIoU)

	faces := make([]passport.Detection, 0, len(dets))
	for _, det := range dets {
		q := float64(det.Q)
		if q < d.qualityThreshold {
			continue
		}
		scale := float64(det.Scale)
		faces = append(faces, passport.Detection{
			Box: passport.BoundingBox{
				X:      float64(det.Col) - scale/2,
				Y:      float64(det.Row) - scale/2,
				Width:  scale,
				Height: scale,
			},
			Score: normalizeQuality(q),
		})
	}
	return faces, nil
}

// normalizeQuality maps the cascade's unbounded quality score to the
// 0..1 range reported to callers. Saturating division keeps the mapping
// monotonic without an arbitrary hard cap.
func normalizeQuality(q float64) float64 {
	return q / (q + constants.ScoreSaturation)
}
