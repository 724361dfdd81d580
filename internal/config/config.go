package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	AWS      AWSConfig      `mapstructure:"aws"`
	Tables   TablesConfig   `mapstructure:"tables"`
	Payments PaymentsConfig `mapstructure:"payments"`
	Defaults DefaultsConfig `mapstructure:"defaults"`
	Logger   LoggerConfig   `mapstructure:"logger"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// AWSConfig configures the DynamoDB client. Endpoint is only set for local
// DynamoDB.
type AWSConfig struct {
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	Endpoint        string `mapstructure:"dynamodb_endpoint"`
}

type TablesConfig struct {
	Estimates    string `mapstructure:"estimates"`
	Additionals  string `mapstructure:"additionals"`
	FRCs         string `mapstructure:"frcs"`
	FRCDecisions string `mapstructure:"frc_decisions"`
	WriteOffs    string `mapstructure:"write_offs"`
	Settlements  string `mapstructure:"settlements"`
}

type PaymentsConfig struct {
	AccessToken string `mapstructure:"access_token"`
	PublicKey   string `mapstructure:"public_key"`
	Mock        bool   `mapstructure:"mock"`
	PayerEmail  string `mapstructure:"payer_email"`
}

// DefaultsConfig holds the rates applied to estimates created without them.
type DefaultsConfig struct {
	LabourRate    float64 `mapstructure:"labour_rate"`
	PaintRate     float64 `mapstructure:"paint_rate"`
	VATPercentage float64 `mapstructure:"vat_percentage"`
}

type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from the environment, after loading a .env file
// when one is present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	if err := bindEnvVars(v); err != nil {
		return nil, fmt.Errorf("failed to bind env vars: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.access_key_id", "local")
	v.SetDefault("aws.secret_access_key", "local")

	v.SetDefault("tables.estimates", "claims_estimates")
	v.SetDefault("tables.additionals", "claims_additionals")
	v.SetDefault("tables.frcs", "claims_frcs")
	v.SetDefault("tables.frc_decisions", "claims_frc_decisions")
	v.SetDefault("tables.write_offs", "claims_write_offs")
	v.SetDefault("tables.settlements", "claims_settlements")

	v.SetDefault("payments.mock", false)

	v.SetDefault("defaults.labour_rate", 0)
	v.SetDefault("defaults.paint_rate", 0)
	v.SetDefault("defaults.vat_percentage", 15)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
}

func bindEnvVars(v *viper.Viper) error {
	bindings := map[string][]string{
		"server.port":             {"PORT", "SERVER_PORT"},
		"server.mode":             {"GIN_MODE"},
		"aws.region":              {"AWS_REGION"},
		"aws.access_key_id":       {"AWS_ACCESS_KEY_ID"},
		"aws.secret_access_key":   {"AWS_SECRET_ACCESS_KEY"},
		"aws.dynamodb_endpoint":   {"DYNAMODB_ENDPOINT"},
		"tables.estimates":        {"DYNAMODB_TABLE_ESTIMATES"},
		"tables.additionals":      {"DYNAMODB_TABLE_ADDITIONALS"},
		"tables.frcs":             {"DYNAMODB_TABLE_FRCS"},
		"tables.frc_decisions":    {"DYNAMODB_TABLE_FRC_DECISIONS"},
		"tables.write_offs":       {"DYNAMODB_TABLE_WRITE_OFFS"},
		"tables.settlements":      {"DYNAMODB_TABLE_SETTLEMENTS"},
		"payments.access_token":   {"MERCADOPAGO_ACCESS_TOKEN"},
		"payments.public_key":     {"MERCADOPAGO_PUBLIC_KEY"},
		"payments.mock":           {"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"},
		"payments.payer_email":    {"MERCADOPAGO_PAYER_EMAIL"},
		"defaults.labour_rate":    {"DEFAULT_LABOUR_RATE"},
		"defaults.paint_rate":     {"DEFAULT_PAINT_RATE"},
		"defaults.vat_percentage": {"DEFAULT_VAT_PERCENTAGE"},
		"logger.level":            {"LOG_LEVEL"},
		"logger.format":           {"LOG_FORMAT"},
	}
	for key, envs := range bindings {
		args := append([]string{key}, envs...)
		if err := v.BindEnv(args...); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the values the service cannot start without.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be positive")
	}
	if strings.TrimSpace(c.AWS.Region) == "" {
		return fmt.Errorf("aws.region is required")
	}
	for name, table := range map[string]string{
		"tables.estimates":     c.Tables.Estimates,
		"tables.additionals":   c.Tables.Additionals,
		"tables.frcs":          c.Tables.FRCs,
		"tables.frc_decisions": c.Tables.FRCDecisions,
		"tables.write_offs":    c.Tables.WriteOffs,
		"tables.settlements":   c.Tables.Settlements,
	} {
		if strings.TrimSpace(table) == "" {
			return fmt.Errorf("%s is required", name)
		}
	}
	if c.Defaults.LabourRate < 0 || c.Defaults.PaintRate < 0 {
		return fmt.Errorf("default rates must not be negative")
	}
	if c.Defaults.VATPercentage < 0 || c.Defaults.VATPercentage > 100 {
		return fmt.Errorf("defaults.vat_percentage must be between 0 and 100")
	}
	return nil
}
