package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/notion-client/pkg/notion"
)

// GetPage implements notion.Client.GetPage.
func (c *Client) GetPage(ctx context.Context, id notion.AsIdentifier[notion.PageID]) (*notion.Page, error) {
	path := "/pages/" + id.AsID().Value()

	object, err := c.get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting page: %w", err)
	}

	page, ok := object.(notion.PageObject)
	if !ok {
		return nil, fmt.Errorf("getting page: %w", &notion.UnexpectedResponseError{Response: object})
	}

	return &page.Page, nil
}

// CreatePage implements notion.Client.CreatePage.
func (c *Client) CreatePage(ctx context.Context, request notion.PageCreateRequest) (*notion.Page, error) {
	object, err := c.post(ctx, "/pages", request)
	if err != nil {
		return nil, fmt.Errorf("creating page: %w", err)
	}

	page, ok := object.(notion.PageObject)
	if !ok {
		return nil, fmt.Errorf("creating page: %w", &notion.UnexpectedResponseError{Response: object})
	}

	return &page.Page, nil
}
