package config

import (
	_ "embed"
	"os"
	"strconv"

	"github.com/photoid/passport-crop/internal/constants"
	"github.com/photoid/passport-crop/internal/passport"
	"gopkg.in/yaml.v3"
)

//go:embed formats.yaml
var formatsYAML []byte

type Config struct {
	Detector DetectorConfig
	Encoder  EncoderConfig
	Web      WebConfig
	Formats  FormatsConfig
}

type DetectorConfig struct {
	ModelPath        string  // path to the pigo facefinder cascade file
	MinFaceSize      int     // smallest detectable face side in pixels
	MaxFaceSize      int     // largest detectable face side in pixels
	QualityThreshold float64 // minimum cascade quality score to keep a detection
}

type EncoderConfig struct {
	JPEGQuality int // quality for the re-encoded output photo (1-100)
}

type WebConfig struct {
	MaxUploadSize int64 // maximum accepted upload body in bytes
}

type FormatsConfig struct {
	Formats []passport.Profile `yaml:"formats"`
}

// envInt reads an environment variable and parses it as a positive integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

// envFloat reads an environment variable and parses it as a positive float.
// Returns the default value if the env var is unset, empty, or invalid.
func envFloat(key string, defaultVal float64) float64 {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f > 0 {
		return f
	}
	return defaultVal
}

func Load() *Config {
	var formats FormatsConfig
	if err := yaml.Unmarshal(formatsYAML, &formats); err != nil {
		// This is an embedded file so this error should never happen in practice
		panic("failed to unmarshal embedded formats.yaml: " + err.Error())
	}

	modelPath := os.Getenv("MODEL_PATH")
	if modelPath == "" {
		modelPath = "models/facefinder"
	}

	return &Config{
		Detector: DetectorConfig{
			ModelPath:        modelPath,
			MinFaceSize:      envInt("MIN_FACE_SIZE", constants.MinFaceSize),
			MaxFaceSize:      envInt("MAX_FACE_SIZE", constants.MaxFaceSize),
			QualityThreshold: envFloat("DETECT_QUALITY_THRESHOLD", constants.DefaultQualityThreshold),
		},
		Encoder: EncoderConfig{
			JPEGQuality: envInt("JPEG_QUALITY", constants.DefaultJPEGQuality),
		},
		Web: WebConfig{
			MaxUploadSize: int64(envInt("MAX_UPLOAD_SIZE", constants.MaxUploadSize)),
		},
		Formats: formats,
	}
}

// Profile returns the photo format with the given name. The second
// return value reports whether the format exists. An empty name selects
// the default passport format.
func (c *Config) Profile(name string) (passport.Profile, bool) {
	if name == "" {
		name = "passport"
	}
	for _, p := range c.Formats.Formats {
		if p.Name == name {
			return p, true
		}
	}
	return passport.Profile{}, false
}

// ProfileNames lists the available photo format names in file order.
func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Formats.Formats))
	for _, p := range c.Formats.Formats {
		names = append(names, p.Name)
	}
	return names
}
