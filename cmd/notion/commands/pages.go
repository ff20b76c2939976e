package commands

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/notion-client/internal/constants"
	"github.com/fivetwenty-io/notion-client/pkg/notion"
)

// NewPageCommand creates the page command group.
func NewPageCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "page",
		Aliases: []string{"pages"},
		Short:   "Get and create pages",
		Long:    "Get pages and create pages in databases",
	}

	cmd.AddCommand(newPageGetCommand())
	cmd.AddCommand(newPageCreateCommand())

	return cmd
}

func newPageGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PAGE_ID",
		Short: "Get page details",
		Long:  "Display a page and its property values. The ID may also be a page URL.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := notion.ParsePageID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			page, err := client.GetPage(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to get page: %w", err)
			}

			return render(cmd, page, func(table *tablewriter.Table) {
				table.Header("Property", "Value")
				_ = table.Append("ID", page.ID.Value())
				_ = table.Append("Title", pageTitle(*page))
				_ = table.Append("Parent", parentName(page.Parent))
				_ = table.Append("URL", orNone(page.URL))
				_ = table.Append("Created", formatTimestamp(page.CreatedTime))
				_ = table.Append("Last Edited", formatTimestamp(page.LastEditedTime))
				_ = table.Append("Archived", strconv.FormatBool(page.Archived))

				for _, name := range propertyNames(page.Properties) {
					_ = table.Append("Property: "+name, string(page.Properties[name].Type()))
				}
			})
		},
	}
}

func newPageCreateCommand() *cobra.Command {
	var (
		databaseID string
		title      string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a page in a database",
		Long:  "Create a page in a database with the given title",
		RunE: func(cmd *cobra.Command, args []string) error {
			if databaseID == "" {
				return constants.ErrDatabaseRequired
			}

			if title == "" {
				return constants.ErrTitleRequired
			}

			id, err := notion.ParseDatabaseID(databaseID)
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

			request, err := buildPageCreateRequest(database, title)
			if err != nil {
				return err
			}

			page, err := client.CreatePage(cmd.Context(), request)
			if err != nil {
				return fmt.Errorf("failed to create page: %w", err)
			}

			return render(cmd, page, func(table *tablewriter.Table) {
				table.Header("ID", "Title", "URL")
				_ = table.Append(page.ID.Value(), pageTitle(*page), orNone(page.URL))
			})
		},
	}

	cmd.Flags().StringVarP(&databaseID, "database", "d", "", "database ID or URL (required)")
	cmd.Flags().StringVar(&title, "title", "", "page title (required)")

	return cmd
}

// buildPageCreateRequest sets the title property of database, whatever it
// is named.
func buildPageCreateRequest(database *notion.Database, title string) (notion.PageCreateRequest, error) {
	titleProperty := ""

	for _, name := range database.Properties.Names() {
		if _, ok := database.Properties[name].(notion.TitlePropertyConfig); ok {
			titleProperty = name

			break
		}
	}

	if titleProperty == "" {
		return notion.PageCreateRequest{}, constants.ErrNoTitleProperty
	}

	return notion.PageCreateRequest{
		Parent: notion.DatabaseParent{DatabaseID: database.ID},
		Properties: notion.Properties{
			titleProperty: notion.TitlePropertyValue{Title: notion.RichTexts{notion.NewRichText(title)}},
		},
	}, nil
}

func parentName(parent notion.Parent) string {
	switch p := parent.(type) {
	case notion.DatabaseParent:
		return "database " + p.DatabaseID.Value()
	case notion.PageParent:
		return "page " + p.PageID.Value()
	case notion.BlockParent:
		return "block " + p.BlockID.Value()
	case notion.WorkspaceParent:
		return string(p.Type())
	default:
		return None
	}
}
