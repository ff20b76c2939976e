package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/notion-client/pkg/notion"
)

// ListUsers implements notion.Client.ListUsers.
func (c *Client) ListUsers(ctx context.Context) (*notion.ListResponse[notion.User], error) {
	return c.ListUsersPage(ctx, notion.Paging{})
}

// ListUsersPage implements notion.Client.ListUsersPage.
func (c *Client) ListUsersPage(ctx context.Context, paging notion.Paging) (*notion.ListResponse[notion.User], error) {
	object, err := c.get(ctx, "/users", paging.Query())
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	list, err := expectList(object)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	users, err := notion.ExpectUsers(list)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	return &users, nil
}
