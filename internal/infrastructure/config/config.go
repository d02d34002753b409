package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	WarehouseDynamoDB = "dynamodb"
	WarehousePostgres = "postgres"
)

// Config is the runtime configuration.
//
// Values come from the environment (a .env file is loaded by main through
// godotenv) and, when CONFIG_FILE is set, from that file. The environment
// wins over the file.
type Config struct {
	Port     int    `mapstructure:"PORT"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	WarehouseDriver string `mapstructure:"WAREHOUSE_DRIVER"`
	PostgresDSN     string `mapstructure:"POSTGRES_DSN"`

	AWSRegion          string `mapstructure:"AWS_REGION"`
	AWSAccessKeyID     string `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	DynamoDBEndpoint   string `mapstructure:"DYNAMODB_ENDPOINT"`

	QuoteLinesTable    string `mapstructure:"QUOTE_LINES_TABLE"`
	IngestionRunsTable string `mapstructure:"INGESTION_RUNS_TABLE"`

	CORSAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"`
}

var defaults = map[string]any{
	"PORT":                  8080,
	"LOG_LEVEL":             "info",
	"WAREHOUSE_DRIVER":      WarehouseDynamoDB,
	"POSTGRES_DSN":          "",
	"AWS_REGION":            "us-east-1",
	"AWS_ACCESS_KEY_ID":     "local",
	"AWS_SECRET_ACCESS_KEY": "local",
	"DYNAMODB_ENDPOINT":     "",
	"QUOTE_LINES_TABLE":     "quote_lines",
	"INGESTION_RUNS_TABLE":  "ingestion_runs",
	"CORS_ALLOWED_ORIGINS":  "",
}

// Load reads the configuration. configFile may be empty.
func Load(configFile string) (Config, error) {
	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.WarehouseDriver = strings.ToLower(strings.TrimSpace(cfg.WarehouseDriver))

	switch cfg.WarehouseDriver {
	case WarehouseDynamoDB:
	case WarehousePostgres:
		if strings.TrimSpace(cfg.PostgresDSN) == "" {
			return Config{}, fmt.Errorf("POSTGRES_DSN is required for warehouse driver %q", cfg.WarehouseDriver)
		}
	default:
		return Config{}, fmt.Errorf("unknown warehouse driver %q", cfg.WarehouseDriver)
	}
	return cfg, nil
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS; empty means any origin.
func (c Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
