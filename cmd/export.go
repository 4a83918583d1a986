package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lapuropizza/storefront/internal/export"
	"github.com/lapuropizza/storefront/internal/models"
)

var (
	exportPath string
	exportS3   bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export order history as partitioned parquet files",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		if err := runExport(cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportPath, "path", "data/export", "Output directory, or key prefix with --s3")
	exportCmd.Flags().BoolVar(&exportS3, "s3", false, "Upload partitions to the configured S3 bucket")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cfg *models.Config) error {
	ctx := context.Background()

	repo, cleanup, err := openRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	var exporter *export.Exporter
	if exportS3 {
		if cfg.CloudStorage.BucketName == "" {
			return fmt.Errorf("cloud_storage.bucket_name is not configured")
		}
		exporter, err = export.NewS3Exporter(repo, exportPath, cfg.CloudStorage.BucketName, cfg.CloudStorage.Region)
		if err != nil {
			return err
		}
	} else {
		exporter = export.NewExporter(repo, exportPath)
	}

	return exporter.Run(ctx)
}
