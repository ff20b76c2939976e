package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/fivetwenty-io/notion-client/pkg/notion"
)

func TestUsers_ListUsers(t *testing.T) {
	t.Parallel()

	tests := []TestOperation{
		{
			Name:         "lists users",
			ExpectedPath: "/users",
			Method:       http.MethodGet,
			StatusCode:   http.StatusOK,
			Response:     listJSON("", personJSON),
		},
		{
			Name:         "unauthorized",
			ExpectedPath: "/users",
			Method:       http.MethodGet,
			StatusCode:   http.StatusUnauthorized,
			Response:     `{"object":"error","status":401,"code":"unauthorized","message":"API token is invalid."}`,
			WantErr:      true,
			ErrMessage:   "listing users: unauthorized",
		},
	}

	RunOperationTests(t, tests, func(ctx context.Context, c *Client) (*notion.ListResponse[notion.User], error) {
		return c.ListUsers(ctx)
	})
}

func TestUsers_ListUsersPage(t *testing.T) {
	t.Parallel()

	tests := []TestOperation{
		{
			Name:         "lists a page of users",
			ExpectedPath: "/users",
			Method:       http.MethodGet,
			StatusCode:   http.StatusOK,
			Response:     listJSON("cursor-9", personJSON),
		},
		{
			Name:         "block in a user list",
			ExpectedPath: "/users",
			Method:       http.MethodGet,
			StatusCode:   http.StatusOK,
			Response:     listJSON("", personJSON, paragraphJSON),
			WantErr:      true,
			ErrMessage:   "unexpected response: block",
		},
	}

	RunOperationTests(t, tests, func(ctx context.Context, c *Client) (*notion.ListResponse[notion.User], error) {
		return c.ListUsersPage(ctx, notion.Paging{PageSize: notion.Ptr(1)})
	})
}
