package database

import (
	"context"

	appconfig "claims_xpto/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// ConnectDynamoDB creates a DynamoDB client from the AWS section of the
// service configuration. A non-empty Endpoint points the client at a local
// DynamoDB (e.g. http://dynamodb:8000).
func ConnectDynamoDB(ctx context.Context, cfg appconfig.AWSConfig, log *zap.Logger) (*dynamodb.Client, error) {
	awsCfg, err := NewAWSConfig(ctx, cfg)
	if err != nil {
		return nil, eris.Wrap(err, "create dynamodb config")
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	if log != nil {
		log.Info("[database] dynamodb client ready",
			zap.String("region", cfg.Region),
			zap.Bool("local_endpoint", cfg.Endpoint != ""),
		)
	}
	return client, nil
}

// NewAWSConfig loads the SDK configuration with static credentials. Local
// DynamoDB does not validate credentials, but the SDK requires them.
func NewAWSConfig(ctx context.Context, cfg appconfig.AWSConfig) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")

	return config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(creds),
	)
}
