// Package detect wraps face detection behind a small interface so the
// crop pipeline can run against a fake detector in tests.
package detect

import (
	"context"
	"image"

	"github.com/photoid/passport-crop/internal/passport"
)

// Detector finds faces in a decoded image. Implementations must be safe
// for concurrent use; the production detector shares one read-only
// cascade across all requests.
type Detector interface {
	DetectFaces(ctx context.Context, img image.Image) ([]passport.Detection, error)
}
