package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/araddon/dateparse"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/notion-client/internal/constants"
	"github.com/fivetwenty-io/notion-client/pkg/notion"
)

// NewDatabasesCommand creates the databases command group.
func NewDatabasesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "databases",
		Aliases: []string{"dbs"},
		Short:   "List databases",
		Long:    "List the databases shared with the integration",
	}

	cmd.AddCommand(newDatabasesListCommand())

	return cmd
}

func newDatabasesListCommand() *cobra.Command {
	var (
		pageSize int
		allPages bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List databases",
		Long:  "List the databases shared with the integration",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			request := notion.SearchOnly(notion.FilterValueDatabase).SearchRequest()

			fetch := func(ctx context.Context, paging notion.Paging) (*notion.ListResponse[notion.Database], error) {
				list, err := client.Search(ctx, request.WithPaging(paging))
				if err != nil {
					return nil, err
				}

				databases := notion.OnlyDatabases(*list)

				return &databases, nil
			}

			databases, err := fetchList(cmd.Context(), fetch, pageSize, allPages)
			if err != nil {
				return fmt.Errorf("failed to list databases: %w", err)
			}

			return render(cmd, databases, func(table *tablewriter.Table) {
				table.Header("ID", "Title", "Properties", "Last Edited")

				for _, database := range databases {
					_ = table.Append(
						database.ID.Value(),
						truncate(orNone(database.TitlePlainText())),
						strconv.Itoa(len(database.Properties)),
						formatTimestamp(database.LastEditedTime),
					)
				}
			})
		},
	}

	cmd.Flags().IntVar(&pageSize, "page-size", 0, "results per request, up to 100")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch every page of results")

	return cmd
}

// NewDatabaseCommand creates the database command group.
func NewDatabaseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "database",
		Aliases: []string{"db"},
		Short:   "Inspect and query a database",
		Long:    "Get the schema of a database and query its pages",
	}

	cmd.AddCommand(newDatabaseGetCommand())
	cmd.AddCommand(newDatabaseQueryCommand())

	return cmd
}

func newDatabaseGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get DATABASE_ID",
		Short: "Get database details",
		Long:  "Display a database and its property schema. The ID may also be a database URL.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := notion.ParseDatabaseID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			database, err := client.GetDatabase(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to get database: %w", err)
			}

			return render(cmd, database, func(table *tablewriter.Table) {
				table.Header("Property", "Value")
				_ = table.Append("ID", database.ID.Value())
				_ = table.Append("Title", orNone(database.TitlePlainText()))
				_ = table.Append("URL", orNone(database.URL))
				_ = table.Append("Created", formatTimestamp(database.CreatedTime))
				_ = table.Append("Last Edited", formatTimestamp(database.LastEditedTime))
				_ = table.Append("Archived", strconv.FormatBool(database.Archived))

				for _, name := range database.Properties.Names() {
					_ = table.Append("Property: "+name, string(database.Properties[name].Type()))
				}
			})
		},
	}
}

func newDatabaseQueryCommand() *cobra.Command {
	var (
		property    string
		contains    string
		editedAfter string
		pageSize    int
		allPages    bool
	)

	cmd := &cobra.Command{
		Use:   "query DATABASE_ID",
		Short: "Query database pages",
		Long:  "List the pages of a database, optionally filtered by a text property or by edit time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := notion.ParseDatabaseID(args[0])
			if err != nil {
				return err
			}

			if contains != "" && property == "" {
				return constants.ErrPropertyRequired
			}

			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			var schema notion.PropertyConfigurations

			if contains != "" {
				database, err := client.GetDatabase(cmd.Context(), id)
				if err != nil {
					return fmt.Errorf("failed to get database: %w", err)
				}

				schema = database.Properties
			}

			query, err := buildDatabaseQuery(schema, property, contains, editedAfter)
			if err != nil {
				return err
			}

			fetch := func(ctx context.Context, paging notion.Paging) (*notion.ListResponse[notion.Page], error) {
				return client.QueryDatabase(ctx, id, query.WithPaging(paging))
			}

			pages, err := fetchList(cmd.Context(), fetch, pageSize, allPages)
			if err != nil {
				return fmt.Errorf("failed to query database: %w", err)
			}

			return render(cmd, pages, func(table *tablewriter.Table) {
				table.Header("ID", "Title", "Last Edited", "URL")

				for _, page := range pages {
					_ = table.Append(
						page.ID.Value(),
						truncate(pageTitle(page)),
						formatTimestamp(page.LastEditedTime),
						orNone(page.URL),
					)
				}
			})
		},
	}

	cmd.Flags().StringVar(&property, "property", "", "text property to filter on")
	cmd.Flags().StringVar(&contains, "contains", "", "only pages whose --property contains this text")
	cmd.Flags().StringVar(&editedAfter, "edited-after", "", "only pages edited after this date or time")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "results per request, up to 100")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch every page of results")

	return cmd
}

// buildDatabaseQuery turns the query flags into a filter. The conditions
// are combined with and.
func buildDatabaseQuery(schema notion.PropertyConfigurations, property, contains, editedAfter string) (notion.DatabaseQuery, error) {
	var filters []notion.Filter

	if contains != "" {
		if property == "" {
			return notion.DatabaseQuery{}, constants.ErrPropertyRequired
		}

		filters = append(filters, notion.FilterCondition{
			Property:  property,
			Condition: textCondition(schema[property], notion.TextCondition{Contains: notion.Ptr(contains)}),
		})
	}

	if editedAfter != "" {
		after, err := parseFlagDate(editedAfter)
		if err != nil {
			return notion.DatabaseQuery{}, err
		}

		filters = append(filters, notion.TimestampFilter{
			Timestamp: notion.SortTimestampLastEditedTime,
			Condition: notion.DateCondition{After: &after},
		})
	}

	switch len(filters) {
	case 0:
		return notion.DatabaseQuery{}, nil
	case 1:
		return notion.DatabaseQuery{Filter: filters[0]}, nil
	default:
		return notion.DatabaseQuery{Filter: notion.And(filters...)}, nil
	}
}

// textCondition picks the filter key matching the type of the property.
// Unknown properties are filtered as rich text.
func textCondition(config notion.PropertyConfiguration, condition notion.TextCondition) notion.PropertyCondition {
	if config == nil {
		return notion.ConditionRichText(condition)
	}

	switch config.Type() {
	case notion.PropertyTypeTitle:
		return notion.ConditionTitle(condition)
	case notion.PropertyTypeURL:
		return notion.ConditionURL(condition)
	case notion.PropertyTypeEmail:
		return notion.ConditionEmail(condition)
	case notion.PropertyTypePhoneNumber:
		return notion.ConditionPhoneNumber(condition)
	default:
		return notion.ConditionRichText(condition)
	}
}

// parseFlagDate accepts the API's own formats first and falls back to the
// loose formats dateparse understands, such as "May 1, 2023".
func parseFlagDate(value string) (notion.DateOrDateTime, error) {
	date, err := notion.ParseDateOrDateTime(value)
	if err == nil {
		return date, nil
	}

	t, err := dateparse.ParseAny(value)
	if err != nil {
		return notion.DateOrDateTime{}, fmt.Errorf("invalid date %q: %w", value, err)
	}

	return notion.NewDateTime(t), nil
}
