package main

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gin-gonic/gin"
)

func resetLambda(t *testing.T, build func() (*gin.Engine, error)) {
	t.Helper()
	prev := buildRouter
	buildRouter = build
	ginLambda = nil
	t.Cleanup(func() {
		buildRouter = prev
		ginLambda = nil
	})
}

func TestHandlerRetriesBootstrapAfterFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	calls := 0
	resetLambda(t, func() (*gin.Engine, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("database unreachable")
		}
		r := gin.New()
		r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
		return r, nil
	})

	req := events.APIGatewayV2HTTPRequest{
		RawPath: "/ping",
		RequestContext: events.APIGatewayV2HTTPRequestContext{
			HTTP: events.APIGatewayV2HTTPRequestContextHTTPDescription{Method: http.MethodGet, Path: "/ping"},
		},
	}

	resp, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError || resp.Body != "Server error" {
		t.Fatalf("expected 500 Server error, got %d %q", resp.StatusCode, resp.Body)
	}

	resp, err = handler(context.Background(), req)
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 after retry, got %d %q", resp.StatusCode, resp.Body)
	}

	if _, err := handler(context.Background(), req); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected bootstrap to stop after success, got %d builds", calls)
	}
}
