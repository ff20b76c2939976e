// Package notionclient provides the main entry point for creating Notion API clients
package notionclient

import (
	"context"
	"fmt"
	"os"

	"github.com/fivetwenty-io/notion-client/internal/client"
	"github.com/fivetwenty-io/notion-client/pkg/notion"
)

// TokenEnvVar is read by NewFromEnv.
const TokenEnvVar = "NOTION_API_TOKEN"

// New creates a new Notion API client. The config is validated and the
// defaults of notion.Config are applied.
func New(ctx context.Context, config *notion.Config) (notion.Client, error) {
	if config == nil {
		return nil, notion.ErrConfigRequired
	}

	client, err := client.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return client, nil
}

// NewWithToken creates a new client for the public API with an integration token.
func NewWithToken(ctx context.Context, token string) (notion.Client, error) {
	return New(ctx, &notion.Config{
		Token: token,
	})
}

// NewFromEnv creates a new client with the token found in NOTION_API_TOKEN.
func NewFromEnv(ctx context.Context) (notion.Client, error) {
	token := os.Getenv(TokenEnvVar)
	if token == "" {
		return nil, fmt.Errorf("%w: %s is not set", notion.ErrTokenRequired, TokenEnvVar)
	}

	return NewWithToken(ctx, token)
}
