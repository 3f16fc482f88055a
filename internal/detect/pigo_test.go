package detect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/photoid/passport-crop/internal/config"
)

func TestNewPigoDetector_MissingModel(t *testing.T) {
	_, err := NewPigoDetector(config.DetectorConfig{
		ModelPath: filepath.Join(t.TempDir(), "does-not-exist"),
	})
	if err == nil {
		t.Fatal("expected error for missing model file")
	}
}

func TestNewPigoDetector_CorruptModel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facefinder")
	if err := os.WriteFile(path, []byte("not a cascade"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := NewPigoDetector(config.DetectorConfig{ModelPath: path})
	if err == nil {
		t.Fatal("expected error for corrupt model file")
	}
}

func TestNormalizeQuality(t *testing.T) {
	tests := []struct {
		q float64
	}{
		{0}, {1}, {5}, {10}, {50}, {500},
	}

	prev := -1.0
	for _, tt := range tests {
		got := normalizeQuality(tt.q)
		if got < 0 || got >= 1 {
			t.Errorf("normalizeQuality(%v) = %v, want value in [0,1)", tt.q, got)
		}
		if got <= prev {
			t.Errorf("normalizeQuality(%v) = %v, expected strictly increasing", tt.q, got)
		}
		prev = got
	}
}
