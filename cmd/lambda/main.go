package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/saulo-duarte/exercise-server/internal/config"
	"github.com/saulo-duarte/exercise-server/internal/container"
)

// Sessions live in the memory of one warm instance, so they end with it.
var adapter *httpadapter.HandlerAdapter

func init() {
	cfg, err := config.Load()
	if err != nil {
		config.Logger.WithError(err).Fatal("Failed to load configuration")
	}

	c := container.New(cfg)
	adapter = httpadapter.New(c.Router)
}

func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return adapter.ProxyWithContext(ctx, req)
}

func main() {
	lambda.Start(handler)
}
