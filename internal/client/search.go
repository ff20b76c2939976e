package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/notion-client/pkg/notion"
)

// Search implements notion.Client.Search. Results keep their object kind;
// use notion.OnlyPages or notion.OnlyDatabases to narrow them.
func (c *Client) Search(ctx context.Context, request notion.SearchRequester) (*notion.ListResponse[notion.Object], error) {
	var body notion.SearchRequest
	if request != nil {
		body = request.SearchRequest()
	}

	object, err := c.post(ctx, "/search", body)
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}

	list, err := expectList(object)
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}

	return &list, nil
}
