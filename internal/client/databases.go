package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/notion-client/pkg/notion"
)

// ListDatabases implements notion.Client.ListDatabases.
//
// Deprecated: the endpoint is gone from the public API. Use Search.
func (c *Client) ListDatabases(ctx context.Context) (*notion.ListResponse[notion.Database], error) {
	if c.logger != nil {
		c.logger.Warn("ListDatabases is deprecated, use Search with a database filter", nil)
	}

	object, err := c.get(ctx, "/databases", nil)
	if err != nil {
		return nil, fmt.Errorf("listing databases: %w", err)
	}

	list, err := expectList(object)
	if err != nil {
		return nil, fmt.Errorf("listing databases: %w", err)
	}

	databases, err := notion.ExpectDatabases(list)
	if err != nil {
		return nil, fmt.Errorf("listing databases: %w", err)
	}

	return &databases, nil
}

// GetDatabase implements notion.Client.GetDatabase.
func (c *Client) GetDatabase(ctx context.Context, id notion.AsIdentifier[notion.DatabaseID]) (*notion.Database, error) {
	path := "/databases/" + id.AsID().Value()

	object, err := c.get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting database: %w", err)
	}

	database, ok := object.(notion.DatabaseObject)
	if !ok {
		return nil, fmt.Errorf("getting database: %w", &notion.UnexpectedResponseError{Response: object})
	}

	return &database.Database, nil
}

// QueryDatabase implements notion.Client.QueryDatabase.
func (c *Client) QueryDatabase(
	ctx context.Context,
	id notion.AsIdentifier[notion.DatabaseID],
	query notion.DatabaseQuerier,
) (*notion.ListResponse[notion.Page], error) {
	path := "/databases/" + id.AsID().Value() + "/query"

	var body notion.DatabaseQuery
	if query != nil {
		body = query.DatabaseQuery()
	}

	object, err := c.post(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	list, err := expectList(object)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	pages, err := notion.ExpectPages(list)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return &pages, nil
}
