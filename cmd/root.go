package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "passport-crop",
	Short: "A service that crops uploaded photos to passport format",
	Long: `Passport Crop detects the principal face in a photograph and cuts a
standardized passport-style crop around it: the face fills 75% of the
frame height, the aspect ratio matches the 3.5x4.5cm format and the
crop is shifted up slightly to leave headroom below the chin.

Run it as an HTTP service with "serve" or crop local files with "crop".`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()
}
