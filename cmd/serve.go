package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/photoid/passport-crop/internal/config"
	"github.com/photoid/passport-crop/internal/detect"
	"github.com/photoid/passport-crop/internal/pipeline"
	"github.com/photoid/passport-crop/internal/web"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Start the passport crop web server.
The server exposes POST /api/crop for uploads and serves a small
browser UI at the root path. The face detection model is loaded once
at startup; a missing or corrupt model file aborts the process.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Int("port", 8080, "Port to listen on")
	serveCmd.Flags().String("host", "0.0.0.0", "Host to bind to")
}

// resolveServeHostPort resolves port and host from flags and environment variables.
func resolveServeHostPort(cmd *cobra.Command) (int, string) {
	port := mustGetInt(cmd, "port")
	host := mustGetString(cmd, "host")

	if envPort := os.Getenv("WEB_PORT"); envPort != "" {
		fmt.Sscanf(envPort, "%d", &port)
	}
	if envHost := os.Getenv("WEB_HOST"); envHost != "" {
		host = envHost
	}
	return port, host
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	fmt.Printf("Loading face detection model from %s...\n", cfg.Detector.ModelPath)
	detector, err := detect.NewPigoDetector(cfg.Detector)
	if err != nil {
		// Startup is the only place where an error takes the process
		// down; the service never runs without a working detector.
		return fmt.Errorf("failed to load face detection model: %w", err)
	}
	fmt.Println("Face detection model loaded")

	proc := pipeline.New(detector, cfg.Encoder.JPEGQuality)
	port, host := resolveServeHostPort(cmd)

	server := web.NewServer(cfg, proc, port, host)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nShutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			fmt.Printf("Error during shutdown: %v\n", err)
		}
	}()

	fmt.Printf("Starting Passport Crop on http://%s:%d\n", host, port)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.Start(); err != nil {
		return fmt.Errorf("starting server: %w", err)
	}
	return nil
}
