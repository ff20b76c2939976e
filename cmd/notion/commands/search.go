package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/notion-client/internal/constants"
	"github.com/fivetwenty-io/notion-client/internal/pagination"
	"github.com/fivetwenty-io/notion-client/pkg/notion"
)

// NewSearchCommand creates the search command.
func NewSearchCommand() *cobra.Command {
	var (
		filter   string
		pageSize int
		allPages bool
	)

	cmd := &cobra.Command{
		Use:   "search [QUERY]",
		Short: "Search pages and databases",
		Long:  "Search the pages and databases shared with the integration by title",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}

			request, err := buildSearchRequest(query, filter)
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			fetch := func(ctx context.Context, paging notion.Paging) (*notion.ListResponse[notion.Object], error) {
				return client.Search(ctx, request.WithPaging(paging))
			}

			results, err := fetchList(cmd.Context(), fetch, pageSize, allPages)
			if err != nil {
				return fmt.Errorf("failed to search: %w", err)
			}

			return render(cmd, results, func(table *tablewriter.Table) {
				table.Header("Object", "ID", "Title", "Last Edited")

				for _, object := range results {
					_ = table.Append(objectRow(object))
				}
			})
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "only return objects of this kind (page, database)")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "results per request, up to 100")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch every page of results")

	return cmd
}

func buildSearchRequest(query, filter string) (notion.SearchRequest, error) {
	request := notion.SearchRequest{Query: query}

	value := notion.FilterValue(strings.ToLower(filter))

	switch value {
	case "":
	case notion.FilterValuePage, notion.FilterValueDatabase:
		request.Filter = notion.SearchOnly(value).SearchRequest().Filter
	default:
		return notion.SearchRequest{}, fmt.Errorf("%w: %q", constants.ErrInvalidFilterValue, filter)
	}

	return request, nil
}

// fetchList reads the first page, or every page when all is set.
func fetchList[T any](ctx context.Context, fetch pagination.PageFetcher[T], pageSize int, all bool) ([]T, error) {
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}

	if all {
		opts := pagination.DefaultOptions()
		if pageSize > 0 {
			opts.PageSize = pageSize
		}

		return pagination.FetchAll(ctx, fetch, opts)
	}

	paging := notion.Paging{}
	if pageSize > 0 {
		paging.PageSize = notion.Ptr(pageSize)
	}

	page, err := fetch(ctx, paging)
	if err != nil {
		return nil, err
	}

	return page.Results, nil
}

func objectRow(object notion.Object) []string {
	switch o := object.(type) {
	case notion.DatabaseObject:
		return []string{
			string(o.ObjectType()),
			o.Database.ID.Value(),
			truncate(orNone(o.Database.TitlePlainText())),
			formatTimestamp(o.Database.LastEditedTime),
		}
	case notion.PageObject:
		return []string{
			string(o.ObjectType()),
			o.Page.ID.Value(),
			truncate(pageTitle(o.Page)),
			formatTimestamp(o.Page.LastEditedTime),
		}
	default:
		return []string{string(object.ObjectType()), NotAvailable, None, None}
	}
}
