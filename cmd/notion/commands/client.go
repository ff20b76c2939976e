package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/notion-client/internal/constants"
	"github.com/fivetwenty-io/notion-client/internal/logging"
	"github.com/fivetwenty-io/notion-client/pkg/notion"
	"github.com/fivetwenty-io/notion-client/pkg/notionclient"
)

// CreateClient creates a Notion client from the flags, environment and
// configuration file.
func CreateClient(ctx context.Context) (notion.Client, error) {
	token := viper.GetString("token")
	if token == "" {
		return nil, constants.ErrNoTokenConfigured
	}

	return newClient(ctx, token)
}

func newClient(ctx context.Context, token string) (notion.Client, error) {
	config := &notion.Config{
		Token:        token,
		BaseURL:      viper.GetString("base_url"),
		UserAgent:    constants.DefaultUserAgent + "-cli",
		RetryMax:     viper.GetInt("retries"),
		RetryWaitMin: constants.DefaultRetryWaitMin,
		RetryWaitMax: constants.DefaultRetryWaitMax,
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = logging.NewConsole(os.Stderr, zerolog.DebugLevel)
	} else {
		config.Logger = logging.NewConsole(os.Stderr, logging.ParseLevel(viper.GetString("log_level")))
	}

	client, err := notionclient.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}
