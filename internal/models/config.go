package models

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type StorageConfig struct {
	// Backend is "memory" or "file". File-backed storage is the durable
	// analogue of the browser client's localStorage.
	Backend string `mapstructure:"backend"`
	Path    string `mapstructure:"path"`
}

type DatabaseConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

func (c DatabaseConfig) ConnString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

type KafkaConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	BrokerList string `mapstructure:"broker_list"`
}

type EventsConfig struct {
	// Output is "console", "file" or "kafka".
	Output string `mapstructure:"output"`
	Path   string `mapstructure:"path"`
}

// Zone is one radial delivery zone around the restaurant.
type Zone struct {
	Name          string  `mapstructure:"name" json:"name"`
	MaxDistanceKm float64 `mapstructure:"max_distance_km" json:"max_distance_km"`
	DeliveryFee   float64 `mapstructure:"delivery_fee" json:"delivery_fee"`
	MinimumOrder  float64 `mapstructure:"minimum_order" json:"minimum_order"`
	EstimatedTime string  `mapstructure:"estimated_time" json:"estimated_time"`
}

type DeliveryConfig struct {
	RestaurantLat float64 `mapstructure:"restaurant_lat"`
	RestaurantLng float64 `mapstructure:"restaurant_lng"`
	Zones         []Zone  `mapstructure:"zones"`
}

type CheckoutConfig struct {
	// DeliveryFee is the flat fee applied when no resolved address
	// carries a zone fee.
	DeliveryFee  float64       `mapstructure:"delivery_fee"`
	PaymentDelay time.Duration `mapstructure:"payment_delay"`
}

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	Region     string `mapstructure:"region"`
	BucketName string `mapstructure:"bucket_name"`
}

type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Storage      StorageConfig      `mapstructure:"storage"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Kafka        KafkaConfig        `mapstructure:"kafka"`
	Events       EventsConfig       `mapstructure:"events"`
	Delivery     DeliveryConfig     `mapstructure:"delivery"`
	Checkout     CheckoutConfig     `mapstructure:"checkout"`
	CloudStorage CloudStorageConfig `mapstructure:"cloud_storage"`
	MenuFile     string             `mapstructure:"menu_file"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Default config location
		viper.AddConfigPath(".")
		viper.SetConfigName("storefront")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeDurationHookFunc(),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("storage.backend", "memory")
	viper.SetDefault("storage.path", "data/storage")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", "5432")
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.dbname", "storefront")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("kafka.broker_list", "localhost:9092")
	viper.SetDefault("events.output", "console")
	viper.SetDefault("events.path", "data/events")
	viper.SetDefault("checkout.delivery_fee", 5.0)
	viper.SetDefault("checkout.payment_delay", 2*time.Second)
	// Restaurant coordinates default to the Zurich store.
	viper.SetDefault("delivery.restaurant_lat", 47.3769)
	viper.SetDefault("delivery.restaurant_lng", 8.5417)
}

// DefaultZones is the delivery zone table used when none is configured.
func DefaultZones() []Zone {
	return []Zone{
		{Name: "A", MaxDistanceKm: 3, DeliveryFee: 0, MinimumOrder: 25, EstimatedTime: "30-45 min"},
		{Name: "B", MaxDistanceKm: 6, DeliveryFee: 5, MinimumOrder: 40, EstimatedTime: "45-60 min"},
		{Name: "C", MaxDistanceKm: 10, DeliveryFee: 8, MinimumOrder: 60, EstimatedTime: "60-75 min"},
	}
}
