package commands

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/notion-client/pkg/notion"
)

// NewUsersCommand creates the users command group.
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "List workspace users",
		Long:    "List the people and bots of the workspace",
	}

	cmd.AddCommand(newUsersListCommand())

	return cmd
}

func newUsersListCommand() *cobra.Command {
	var (
		pageSize int
		allPages bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		Long:  "List the people and bots of the workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			users, err := fetchList(cmd.Context(), client.ListUsersPage, pageSize, allPages)
			if err != nil {
				return fmt.Errorf("failed to list users: %w", err)
			}

			return render(cmd, notion.Users(users), func(table *tablewriter.Table) {
				table.Header("ID", "Name", "Type", "Email")

				for _, user := range users {
					_ = table.Append(user.AsID().Value(), user.DisplayName(), userType(user), userEmail(user))
				}
			})
		},
	}

	cmd.Flags().IntVar(&pageSize, "page-size", 0, "results per request, up to 100")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch every page of results")

	return cmd
}
