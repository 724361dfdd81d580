package database

import (
	"context"
	"testing"

	appconfig "claims_xpto/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewAWSConfig(t *testing.T) {
	cfg, err := NewAWSConfig(context.Background(), appconfig.AWSConfig{
		Region:          "sa-east-1",
		AccessKeyID:     "local",
		SecretAccessKey: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "sa-east-1", cfg.Region)

	creds, err := cfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "local", creds.AccessKeyID)
}

func TestConnectDynamoDB_LocalEndpoint(t *testing.T) {
	client, err := ConnectDynamoDB(context.Background(), appconfig.AWSConfig{
		Region:          "us-east-1",
		AccessKeyID:     "local",
		SecretAccessKey: "local",
		Endpoint:        "http://localhost:8000",
	}, zap.NewNop())
	require.NoError(t, err)

	require.NotNil(t, client.Options().BaseEndpoint)
	assert.Equal(t, "http://localhost:8000", *client.Options().BaseEndpoint)
}
