// Package notion provides types, interfaces, and helpers for working with the
// Notion public API.
//
// # Overview
//
// The notion package defines the domain model (Database, Page, Block, User,
// RichText, property configurations and values) and the Client interface. A
// concrete implementation of the interface is provided by the notionclient
// package, which wires configuration, transport and logging. Most consumers
// should import notionclient to construct a client and then use the types
// defined here.
//
// Getting a client
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
//	  cli, err := notionclient.New(ctx, &notion.Config{Token: "secret_..."})
//	  if err != nil { log.Fatal(err) }
//
//	  databases, err := cli.Search(ctx, notion.SearchOnly(notion.FilterValueDatabase))
//	  if err != nil { log.Fatal(err) }
//	  _ = notion.OnlyDatabases(*databases)
//	}
//
// # Identifiers
//
// DatabaseID, PageID, BlockID, UserID and PropertyID are distinct types over
// the same string, so a page ID cannot be passed where a database ID is
// expected. Operations accept an AsIdentifier, which both the ID and the
// entity carrying it implement. A page is also the root block of its content:
// use BlockIDFromPage or Page.BlockID to list it.
//
// # Unions
//
// Blocks, rich text, mentions, users, parents, property configurations and
// property values are closed sets of variants decoded from their "type" tag.
// Types the package does not know decode to a catch-all (UnknownBlock,
// RichTextUnknown, UnknownPropertyValue and so on) that keeps the raw JSON, so
// new API features never break decoding. Formula results, parents and the
// object envelope have no catch-all and report a DecodeError instead.
//
// # Queries and pagination
//
// Search takes either a SearchRequest or one of the single criterion
// shorthands SearchQuery, SearchSort and SearchFilter. QueryDatabase takes a
// DatabaseQuery whose Filter is a tree of FilterCondition, TimestampFilter,
// AndFilter and OrFilter nodes. List results are ListResponse values:
//
//	paging := notion.Paging{PageSize: notion.Ptr(50)}
//	for {
//	  users, err := cli.ListUsersPage(ctx, paging)
//	  if err != nil { break }
//	  var ok bool
//	  if paging, ok = users.NextPage(paging); !ok { break }
//	}
//
// # Errors
//
// API errors are represented by APIError. Helpers such as IsNotFound,
// IsUnauthorized and IsRateLimited make it easy to branch on common cases.
// Bodies that do not match the model yield a DecodeError whose Field names
// the offending path, such as "page.properties.Due.date.start".
//
// # Interceptors
//
// InterceptorChain runs request and response interceptors around every HTTP
// exchange, for logging, extra headers or per-endpoint metrics.
package notion
