package main

import (
	"os"

	"github.com/benmeehan/geotagger/internal/constants"
	"github.com/benmeehan/geotagger/internal/services"
	"github.com/benmeehan/geotagger/internal/utils"
	"github.com/benmeehan/geotagger/pkg/file"
	"github.com/benmeehan/geotagger/pkg/geocode"
	"github.com/benmeehan/geotagger/pkg/metadata"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	overwrite  bool
	threads    int
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "geotagger <gps-table|photos> <photos|gps-table>",
	Short: "Correlate a GPS track with photo capture times",
	Long: `geotagger matches photos against a GPS sample table by capture time.

Whichever argument ends in .csv (or .nmea) is the GPS table; the other is a
photo file or directory. With the table first, the nearest sample within one
hour is written into each untagged photo. With the table second, GPS-tagged
photos are harvested into the table.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, args[0], args[1])
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().BoolVarP(&overwrite, "overwrite", "o", false, "Overwrite original image instead of keeping a backup")
	rootCmd.Flags().IntVarP(&threads, "threads", "t", constants.DefaultWorkerCount, "Number of worker threads to use")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to an optional YAML configuration file")
}

func run(cmd *cobra.Command, arg1, arg2 string) error {
	// Colored console output, serialized so worker lines never interleave
	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	logger := zerolog.New(zerolog.SyncWriter(console)).With().Timestamp().Logger()

	fileClient := file.NewFileService()

	config := utils.DefaultConfig()
	if configPath != "" {
		loaded, err := utils.LoadConfig(configPath, fileClient)
		if err != nil {
			return err
		}
		config = loaded
	}

	if level, err := zerolog.ParseLevel(config.Logging.Level); err == nil && level != zerolog.NoLevel {
		logger = logger.Level(level)
	}

	workers := config.Workers
	if cmd.Flags().Changed("threads") {
		workers = threads
	}

	runID := uuid.New().String()
	logger.Info().Str("run_id", runID).Int("workers", workers).Msg("Starting geotagger run")

	mode, tablePath, photosPath := services.SelectMode(arg1, arg2)
	if mode == services.ModeUnrecognized {
		logger.Warn().Str("arg1", arg1).Str("arg2", arg2).Msg("Neither argument names a GPS table, nothing to do")
		return nil
	}

	exifClient, err := metadata.NewExifService(overwrite, logger)
	if err != nil {
		return err
	}
	defer exifClient.Close()

	switch mode {
	case services.ModeInject:
		var geocoder geocode.Resolver = geocode.NewNopResolver()
		if key := config.Geocoding.MapsAPIKey; key != "" {
			google, err := geocode.NewGoogleGeocoder(key)
			if err != nil {
				return err
			}
			geocoder = google
		}
		return services.NewInjectService(tablePath, photosPath, workers, exifClient, geocoder, fileClient, logger).Run()
	case services.ModeHarvest:
		return services.NewHarvestService(tablePath, photosPath, workers, exifClient, fileClient, logger).Run()
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
