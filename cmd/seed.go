package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/lapuropizza/storefront/internal/factories"
	"github.com/lapuropizza/storefront/internal/models"
)

var seedCount int

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the order history with generated demo orders",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		if err := seed(cfg, seedCount); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	seedCmd.Flags().IntVar(&seedCount, "count", 500, "Number of orders to generate")
	rootCmd.AddCommand(seedCmd)
}

func seed(cfg *models.Config, count int) error {
	ctx := context.Background()

	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	repo, cleanup, err := openRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	factory := factories.NewOrderFactory(cat)
	bar := progressbar.Default(int64(count), "seeding orders")

	const batchSize = 100
	batch := make([]*models.Order, 0, batchSize)
	for i := 0; i < count; i++ {
		batch = append(batch, factory.CreateOrder())
		if len(batch) == batchSize {
			if err := repo.BulkCreate(ctx, batch); err != nil {
				return fmt.Errorf("inserting orders: %w", err)
			}
			bar.Add(len(batch))
			batch = batch[:0]
		}
	}
	if len(batch) > 0 {
		if err := repo.BulkCreate(ctx, batch); err != nil {
			return fmt.Errorf("inserting orders: %w", err)
		}
		bar.Add(len(batch))
	}

	total, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Order history now holds %d orders\n", total)
	return nil
}
