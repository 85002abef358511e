package main

// Build the Lambda handler binary:
//   GOOS=linux GOARCH=arm64 CGO_ENABLED=0 go build -o bootstrap ./cmd/lambda-http

import (
	"context"
	"net/http"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"

	"coach-backend/internal/bootstrap"
	"coach-backend/internal/shared/config"
	"coach-backend/internal/shared/telemetry"
)

var (
	initMu    sync.Mutex
	ginLambda *ginadapter.GinLambdaV2

	buildRouter = func() (*gin.Engine, error) {
		app, err := bootstrap.Build(config.Load())
		if err != nil {
			return nil, err
		}
		return app.Router, nil
	}
)

// lambdaHandler builds the app on first use and retries on later invocations
// until a build succeeds.
func lambdaHandler() (*ginadapter.GinLambdaV2, error) {
	initMu.Lock()
	defer initMu.Unlock()
	if ginLambda != nil {
		return ginLambda, nil
	}
	router, err := buildRouter()
	if err != nil {
		return nil, err
	}
	ginLambda = ginadapter.NewV2(router)
	return ginLambda, nil
}

func serverError() events.APIGatewayV2HTTPResponse {
	return events.APIGatewayV2HTTPResponse{
		StatusCode: http.StatusInternalServerError,
		Body:       "Server error",
		Headers:    map[string]string{"Content-Type": "text/plain; charset=utf-8"},
	}
}

func handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	proxy, err := lambdaHandler()
	if err != nil {
		telemetry.Error("bootstrap.failed", map[string]any{"error": err})
		return serverError(), nil
	}
	return proxy.ProxyWithContext(ctx, req)
}

func main() {
	lambda.Start(handler)
}
