package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/notion-client/pkg/notion"
)

// GetBlockChildren implements notion.Client.GetBlockChildren.
func (c *Client) GetBlockChildren(ctx context.Context, id notion.AsIdentifier[notion.BlockID]) (*notion.ListResponse[notion.Block], error) {
	return c.GetBlockChildrenPage(ctx, id, notion.Paging{})
}

// GetBlockChildrenPage implements notion.Client.GetBlockChildrenPage.
func (c *Client) GetBlockChildrenPage(
	ctx context.Context,
	id notion.AsIdentifier[notion.BlockID],
	paging notion.Paging,
) (*notion.ListResponse[notion.Block], error) {
	path := "/blocks/" + id.AsID().Value() + "/children"

	object, err := c.get(ctx, path, paging.Query())
	if err != nil {
		return nil, fmt.Errorf("getting block children: %w", err)
	}

	list, err := expectList(object)
	if err != nil {
		return nil, fmt.Errorf("getting block children: %w", err)
	}

	blocks, err := notion.ExpectBlocks(list)
	if err != nil {
		return nil, fmt.Errorf("getting block children: %w", err)
	}

	return &blocks, nil
}
