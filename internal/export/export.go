// Package export writes order history as partitioned parquet files, either
// to the local filesystem or to S3, for downstream analytics.
package export

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/lapuropizza/storefront/internal/models"
	"github.com/lapuropizza/storefront/internal/repositories"
)

type Exporter struct {
	repo     repositories.OrderRepository
	basePath string
	uploads  *S3UploaderFactory // nil for local exports
	bucket   string
}

func NewExporter(repo repositories.OrderRepository, basePath string) *Exporter {
	return &Exporter{repo: repo, basePath: basePath}
}

// NewS3Exporter uploads each partition file to s3://<bucket>/<basePath>/...
// instead of writing locally.
func NewS3Exporter(repo repositories.OrderRepository, basePath, bucket, region string) (*Exporter, error) {
	uploads, err := NewS3UploaderFactory(region)
	if err != nil {
		return nil, err
	}
	return &Exporter{repo: repo, basePath: basePath, uploads: uploads, bucket: bucket}, nil
}

// Run exports every stored order, one parquet file per calendar day
// under year=/month=/day= partitions.
func (e *Exporter) Run(ctx context.Context) error {
	orders, err := e.repo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("loading orders: %w", err)
	}
	if len(orders) == 0 {
		log.Printf("No orders to export")
		return nil
	}

	partitions := make(map[string][]models.Order)
	for _, order := range orders {
		partitions[partitionPath(order.PlacedAt)] = append(partitions[partitionPath(order.PlacedAt)], *order)
	}

	bar := progressbar.Default(int64(len(orders)), "exporting orders")
	for path, batch := range partitions {
		if err := e.writePartition(path, batch, bar); err != nil {
			return err
		}
	}
	log.Printf("Exported %d orders across %d partitions", len(orders), len(partitions))
	return nil
}

func (e *Exporter) writePartition(path string, orders []models.Order, bar *progressbar.ProgressBar) error {
	fw, err := e.openFile(filepath.Join(path, "orders.parquet"))
	if err != nil {
		return err
	}

	pw, err := writer.NewParquetWriter(fw, new(OrderRecord), 4)
	if err != nil {
		fw.Close()
		return fmt.Errorf("creating parquet writer for %s: %w", path, err)
	}

	for _, order := range orders {
		record, err := recordFromOrder(order)
		if err != nil {
			return fmt.Errorf("flattening order %s: %w", order.ID, err)
		}
		if err := pw.Write(record); err != nil {
			return fmt.Errorf("writing order %s: %w", order.ID, err)
		}
		bar.Add(1)
	}

	if err := pw.WriteStop(); err != nil {
		return fmt.Errorf("finalizing partition %s: %w", path, err)
	}
	return fw.Close()
}

func (e *Exporter) openFile(relPath string) (source.ParquetFile, error) {
	if e.uploads != nil {
		uploader, err := e.uploads.NewUploader(e.bucket, filepath.Join(e.basePath, relPath))
		if err != nil {
			return nil, fmt.Errorf("creating S3 uploader: %w", err)
		}
		return uploader, nil
	}
	fullPath := filepath.Join(e.basePath, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), os.ModePerm); err != nil {
		return nil, err
	}
	fw, err := local.NewLocalFileWriter(fullPath)
	if err != nil {
		return nil, fmt.Errorf("creating local file writer: %w", err)
	}
	return fw, nil
}

func partitionPath(t time.Time) string {
	year, month, day := t.UTC().Date()
	return fmt.Sprintf("year=%d/month=%02d/day=%02d", year, month, day)
}
