package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/photoid/passport-crop/internal/config"
	"github.com/photoid/passport-crop/internal/detect"
	"github.com/photoid/passport-crop/internal/pipeline"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var cropCmd = &cobra.Command{
	Use:   "crop <file-or-directory>",
	Short: "Crop local photos to passport format",
	Long: `Crop a local photo (or every photo in a directory) to passport
format without running the web server. Output files are written next to
the input unless --output is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runCrop,
}

func init() {
	rootCmd.AddCommand(cropCmd)

	cropCmd.Flags().StringP("output", "o", "", "Output file (single input) or directory (directory input)")
	cropCmd.Flags().String("format", "passport", "Photo format to produce")
}

// imageExtensions are the upload types the decoder understands.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// listImageFiles returns image files directly inside dir, sorted by name.
func listImageFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if imageExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files, nil
}

// cropFile processes one input file and writes the result to outPath.
func cropFile(ctx context.Context, proc *pipeline.Pipeline, profile, inPath, outPath string, cfg *config.Config) error {
	p, ok := cfg.Profile(profile)
	if !ok {
		return fmt.Errorf("unknown photo format %q (available: %s)", profile, strings.Join(cfg.ProfileNames(), ", "))
	}

	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inPath, err)
	}

	result, err := proc.Process(ctx, data, p)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outPath, result.JPEG, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	return nil
}

// outputPathFor derives the output filename for a batch-processed input.
func outputPathFor(inPath, outDir, profile string) string {
	base := strings.TrimSuffix(filepath.Base(inPath), filepath.Ext(inPath))
	return filepath.Join(outDir, fmt.Sprintf("%s_%s.jpg", base, profile))
}

func runCrop(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	profile := mustGetString(cmd, "format")
	output := mustGetString(cmd, "output")

	detector, err := detect.NewPigoDetector(cfg.Detector)
	if err != nil {
		return fmt.Errorf("failed to load face detection model: %w", err)
	}
	proc := pipeline.New(detector, cfg.Encoder.JPEGQuality)
	ctx := cmd.Context()

	info, err := os.Stat(args[0])
	if err != nil {
		return err
	}

	if !info.IsDir() {
		outPath := output
		if outPath == "" {
			outPath = outputPathFor(args[0], filepath.Dir(args[0]), profile)
		}
		if err := cropFile(ctx, proc, profile, args[0], outPath, cfg); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", outPath)
		return nil
	}

	files, err := listImageFiles(args[0])
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no image files found in %s", args[0])
	}

	outDir := output
	if outDir == "" {
		outDir = args[0]
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	bar := progressbar.Default(int64(len(files)), "cropping")
	var skipped, failed int
	for _, f := range files {
		err := cropFile(ctx, proc, profile, f, outputPathFor(f, outDir, profile), cfg)
		switch {
		case errors.Is(err, pipeline.ErrNoFace):
			skipped++
		case err != nil:
			failed++
			fmt.Fprintf(os.Stderr, "\n%s: %v\n", f, err)
		}
		_ = bar.Add(1)
	}

	fmt.Printf("\nDone: %d processed, %d without a face, %d failed\n",
		len(files)-skipped-failed, skipped, failed)
	return nil
}
