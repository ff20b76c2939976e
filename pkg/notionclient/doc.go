// Package notionclient provides the primary entry point for constructing a
// Notion API client that implements the notion.Client interface.
//
// It layers configuration validation and the HTTP transport on top of the
// types and interfaces defined in the notion package. Most applications
// should import notionclient to build a client, then use the returned
// notion.Client for every call.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/notion-client/pkg/notion"
//	  "github.com/fivetwenty-io/notion-client/pkg/notionclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  cli, err := notionclient.New(ctx, &notion.Config{Token: "secret_..."})
//	  if err != nil { log.Fatal(err) }
//
//	  // Find every database shared with the integration.
//	  found, err := cli.Search(ctx, notion.SearchOnly(notion.FilterValueDatabase))
//	  if err != nil { log.Fatal(err) }
//
//	  for _, db := range notion.OnlyDatabases(*found).Results {
//	    pages, err := cli.QueryDatabase(ctx, db, notion.DatabaseQuery{})
//	    if err != nil { log.Fatal(err) }
//	    _ = pages
//	  }
//	}
//
// # Retries
//
// Retries are off by default. Set Config.RetryMax to retry connection
// errors, 429 and 5xx responses with exponential backoff.
//
// # Helpers
//
// NewWithToken and NewFromEnv wrap New for the common cases.
package notionclient
