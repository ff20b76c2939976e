package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/notion-client/cmd/notion/commands"
)

func TestNewVersionCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewVersionCommand("1.0.0", "abc123", "2024-01-01")
	assert.Equal(t, "version", cmd.Use)
	assert.Equal(t, "Display version information", cmd.Short)
	assert.NotNil(t, cmd.RunE)
}

func TestNewConfigCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewConfigCommand()
	assert.Equal(t, "config", cmd.Use)
	assert.Equal(t, "Manage CLI configuration", cmd.Short)
	assert.ElementsMatch(t, []string{"show", "set-token", "clear"}, subcommandNames(cmd))

	setToken := findSubcommand(cmd, "set-token")
	require.NotNil(t, setToken)
	assert.Equal(t, "set-token [TOKEN]", setToken.Use)

	verify := setToken.Flags().Lookup("verify")
	require.NotNil(t, verify)
	assert.Equal(t, "false", verify.DefValue)
}

func TestNewSearchCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewSearchCommand()
	assert.Equal(t, "search [QUERY]", cmd.Use)
	assert.Equal(t, "Search pages and databases", cmd.Short)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Args)

	assert.NotNil(t, cmd.Flags().Lookup("filter"))
	assert.NotNil(t, cmd.Flags().Lookup("page-size"))
	assert.Equal(t, "false", cmd.Flags().Lookup("all").DefValue)

	err := cmd.Args(cmd, []string{"one", "two"})
	require.Error(t, err)
}

func TestNewDatabasesCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewDatabasesCommand()
	assert.Equal(t, "databases", cmd.Use)
	assert.Equal(t, []string{"dbs"}, cmd.Aliases)
	assert.Equal(t, []string{"list"}, subcommandNames(cmd))
}

func TestNewDatabaseCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewDatabaseCommand()
	assert.Equal(t, "database", cmd.Use)
	assert.Equal(t, []string{"db"}, cmd.Aliases)
	assert.ElementsMatch(t, []string{"get", "query"}, subcommandNames(cmd))

	get := findSubcommand(cmd, "get")
	require.NotNil(t, get)
	assert.Equal(t, "get DATABASE_ID", get.Use)
	require.Error(t, get.Args(get, nil))

	query := findSubcommand(cmd, "query")
	require.NotNil(t, query)
	assert.Equal(t, "query DATABASE_ID", query.Use)

	for _, flag := range []string{"property", "contains", "edited-after", "page-size", "all"} {
		assert.NotNil(t, query.Flags().Lookup(flag), flag)
	}
}

func TestNewPageCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewPageCommand()
	assert.Equal(t, "page", cmd.Use)
	assert.ElementsMatch(t, []string{"get", "create"}, subcommandNames(cmd))

	create := findSubcommand(cmd, "create")
	require.NotNil(t, create)
	assert.Equal(t, "Create a page in a database", create.Short)

	database := create.Flags().Lookup("database")
	require.NotNil(t, database)
	assert.Equal(t, "d", database.Shorthand)
	assert.NotNil(t, create.Flags().Lookup("title"))
}

func TestNewBlocksCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewBlocksCommand()
	assert.Equal(t, "blocks", cmd.Use)

	children := findSubcommand(cmd, "children")
	require.NotNil(t, children)
	assert.Equal(t, "children BLOCK_OR_PAGE_ID...", children.Use)
	require.Error(t, children.Args(children, nil))
	require.NoError(t, children.Args(children, []string{"a", "b"}))
}

func TestNewUsersCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewUsersCommand()
	assert.Equal(t, "users", cmd.Use)

	list := findSubcommand(cmd, "list")
	require.NotNil(t, list)
	assert.Equal(t, "List users", list.Short)
	assert.NotNil(t, list.Flags().Lookup("all"))
}
