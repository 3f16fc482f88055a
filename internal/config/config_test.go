package config

import "testing"

func TestLoad_EmbeddedFormats(t *testing.T) {
	cfg := Load()

	if len(cfg.Formats.Formats) == 0 {
		t.Fatal("expected embedded formats to be loaded")
	}

	p, ok := cfg.Profile("passport")
	if !ok {
		t.Fatal("expected passport format to exist")
	}

	if p.OutputWidth != 350 || p.OutputHeight != 450 {
		t.Errorf("passport output = %dx%d, want 350x450", p.OutputWidth, p.OutputHeight)
	}
	if p.AspectRatio != 0.77 {
		t.Errorf("passport aspect ratio = %v, want 0.77", p.AspectRatio)
	}
	if p.FaceHeightRatio != 0.75 {
		t.Errorf("passport face height ratio = %v, want 0.75", p.FaceHeightRatio)
	}
	if p.HeadroomShift != 0.10 {
		t.Errorf("passport headroom shift = %v, want 0.10", p.HeadroomShift)
	}
}

func TestProfile_EmptyNameDefaultsToPassport(t *testing.T) {
	cfg := Load()

	p, ok := cfg.Profile("")
	if !ok {
		t.Fatal("expected default profile to resolve")
	}
	if p.Name != "passport" {
		t.Errorf("default profile = %q, want passport", p.Name)
	}
}

func TestProfile_UnknownName(t *testing.T) {
	cfg := Load()

	if _, ok := cfg.Profile("polaroid"); ok {
		t.Error("expected unknown profile to be rejected")
	}
}

func TestEnvInt_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected int
	}{
		{"empty", "", 42},
		{"garbage", "not-a-number", 42},
		{"negative", "-5", 42},
		{"valid", "17", 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_ENV_INT", tt.value)
			if got := envInt("TEST_ENV_INT", 42); got != tt.expected {
				t.Errorf("envInt(%q) = %d, want %d", tt.value, got, tt.expected)
			}
		})
	}
}

func TestEnvFloat_Invalid(t *testing.T) {
	t.Setenv("TEST_ENV_FLOAT", "abc")
	if got := envFloat("TEST_ENV_FLOAT", 5.0); got != 5.0 {
		t.Errorf("envFloat(invalid) = %v, want 5.0", got)
	}

	t.Setenv("TEST_ENV_FLOAT", "7.5")
	if got := envFloat("TEST_ENV_FLOAT", 5.0); got != 7.5 {
		t.Errorf("envFloat(7.5) = %v, want 7.5", got)
	}
}
