package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "us-east-1", cfg.AWS.Region)
	assert.Equal(t, "claims_estimates", cfg.Tables.Estimates)
	assert.Equal(t, "claims_frc_decisions", cfg.Tables.FRCDecisions)
	assert.Equal(t, 15.0, cfg.Defaults.VATPercentage)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.False(t, cfg.Payments.Mock)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("DYNAMODB_ENDPOINT", "http://dynamodb:8000")
	t.Setenv("DYNAMODB_TABLE_FRCS", "frc_local")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
	t.Setenv("DEFAULT_LABOUR_RATE", "385.5")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "http://dynamodb:8000", cfg.AWS.Endpoint)
	assert.Equal(t, "frc_local", cfg.Tables.FRCs)
	assert.True(t, cfg.Payments.Mock)
	assert.Equal(t, 385.5, cfg.Defaults.LabourRate)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server: ServerConfig{Port: 8080},
			AWS:    AWSConfig{Region: "us-east-1"},
			Tables: TablesConfig{
				Estimates:    "e",
				Additionals:  "a",
				FRCs:         "f",
				FRCDecisions: "d",
				WriteOffs:    "w",
				Settlements:  "s",
			},
			Defaults: DefaultsConfig{VATPercentage: 15},
		}
	}

	t.Run("valid", func(t *testing.T) {
		cfg := valid()
		assert.NoError(t, cfg.Validate())
	})

	t.Run("missing table", func(t *testing.T) {
		cfg := valid()
		cfg.Tables.Settlements = " "
		assert.ErrorContains(t, cfg.Validate(), "tables.settlements")
	})

	t.Run("negative rate", func(t *testing.T) {
		cfg := valid()
		cfg.Defaults.PaintRate = -1
		assert.Error(t, cfg.Validate())
	})

	t.Run("vat out of range", func(t *testing.T) {
		cfg := valid()
		cfg.Defaults.VATPercentage = 101
		assert.Error(t, cfg.Validate())
	})
}
