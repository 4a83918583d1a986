package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lapuropizza/storefront/internal/catalog"
	"github.com/lapuropizza/storefront/internal/checkout"
	"github.com/lapuropizza/storefront/internal/delivery"
	"github.com/lapuropizza/storefront/internal/events"
	"github.com/lapuropizza/storefront/internal/models"
	"github.com/lapuropizza/storefront/internal/repositories"
	"github.com/lapuropizza/storefront/internal/repositories/postgres"
	"github.com/lapuropizza/storefront/internal/server"
	"github.com/lapuropizza/storefront/internal/storage"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Lapuro Pizza storefront server",
	Long:  `storefront serves the Lapuro Pizza menu, per-session carts, delivery eligibility checks and checkout over HTTP, with order history in Postgres and order events on Kafka.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		if err := serve(cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./storefront.yaml)")

	rootCmd.Flags().String("addr", ":8080", "HTTP listen address")
	rootCmd.Flags().String("storage-backend", "memory", "Session storage backend (memory or file)")
	rootCmd.Flags().String("storage-path", "data/storage", "Directory for file-backed session storage")
	rootCmd.Flags().String("menu-file", "", "Menu JSON file (built-in menu when empty)")
	rootCmd.Flags().Bool("database-enabled", false, "Store orders in Postgres")
	rootCmd.Flags().Bool("kafka-enabled", false, "Publish order events to Kafka")
	rootCmd.Flags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	rootCmd.Flags().String("events-output", "console", "Order event output (console, file or kafka)")

	viper.BindPFlag("server.addr", rootCmd.Flags().Lookup("addr"))
	viper.BindPFlag("storage.backend", rootCmd.Flags().Lookup("storage-backend"))
	viper.BindPFlag("storage.path", rootCmd.Flags().Lookup("storage-path"))
	viper.BindPFlag("menu_file", rootCmd.Flags().Lookup("menu-file"))
	viper.BindPFlag("database.enabled", rootCmd.Flags().Lookup("database-enabled"))
	viper.BindPFlag("kafka.enabled", rootCmd.Flags().Lookup("kafka-enabled"))
	viper.BindPFlag("kafka.broker_list", rootCmd.Flags().Lookup("kafka-broker-list"))
	viper.BindPFlag("events.output", rootCmd.Flags().Lookup("events-output"))
}

func serve(cfg *models.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	st, err := openStorage(cfg)
	if err != nil {
		return err
	}

	repo, cleanup, err := openRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	sink, err := events.FromConfig(cfg)
	if err != nil {
		return err
	}
	defer sink.Close()

	checker := delivery.NewChecker(
		models.Location{Lat: cfg.Delivery.RestaurantLat, Lng: cfg.Delivery.RestaurantLng},
		deliveryZones(cfg),
		delivery.NewStatic(),
	)

	svc := checkout.NewService(
		repo,
		sink,
		checkout.NewSimulatedProcessor(cfg.Checkout.PaymentDelay),
		cfg.Checkout.DeliveryFee,
	)

	srv := server.New(cat, checker, svc, repo, st)
	return srv.ListenAndServe(ctx, cfg.Server.Addr)
}

func loadCatalog(cfg *models.Config) (*catalog.Catalog, error) {
	if cfg.MenuFile == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.LoadFile(cfg.MenuFile)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded menu from %s", cfg.MenuFile)
	return cat, nil
}

func openStorage(cfg *models.Config) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case "", "memory":
		return storage.NewMemory(), nil
	case "file":
		return storage.NewFile(cfg.Storage.Path)
	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", cfg.Storage.Backend)
	}
}

func openRepository(ctx context.Context, cfg *models.Config) (repositories.OrderRepository, func(), error) {
	if !cfg.Database.Enabled {
		return repositories.NewMemoryOrderRepository(), func() {}, nil
	}

	pool, err := pgxpool.New(ctx, cfg.Database.ConnString())
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}
	repo := postgres.NewOrderRepository(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("preparing database schema: %w", err)
	}
	log.Printf("Order history stored in Postgres at %s:%s", cfg.Database.Host, cfg.Database.Port)
	return repo, pool.Close, nil
}

func deliveryZones(cfg *models.Config) []models.Zone {
	if len(cfg.Delivery.Zones) > 0 {
		return cfg.Delivery.Zones
	}
	return models.DefaultZones()
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
