package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/fivetwenty-io/notion-client/internal/constants"
	"github.com/fivetwenty-io/notion-client/pkg/notion"
)

// BlockChildren are the direct children of one block or page.
type BlockChildren struct {
	Parent   notion.BlockID `json:"parent"   yaml:"parent"`
	Children notion.Blocks  `json:"children" yaml:"children"`
}

// NewBlocksCommand creates the blocks command group.
func NewBlocksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "blocks",
		Aliases: []string{"block"},
		Short:   "Read page content",
		Long:    "Read the blocks that make up the content of pages",
	}

	cmd.AddCommand(newBlocksChildrenCommand())

	return cmd
}

func newBlocksChildrenCommand() *cobra.Command {
	var allPages bool

	cmd := &cobra.Command{
		Use:   "children BLOCK_OR_PAGE_ID...",
		Short: "List child blocks",
		Long:  "List the direct children of one or more blocks. A page ID lists the content of the page.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]notion.BlockID, 0, len(args))

			for _, arg := range args {
				id, err := notion.ParseBlockID(arg)
				if err != nil {
					return err
				}

				ids = append(ids, id)
			}

			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			results, err := fetchBlockChildren(cmd.Context(), client, ids, allPages)
			if err != nil {
				return err
			}

			return render(cmd, results, func(table *tablewriter.Table) {
				table.Header("Parent", "ID", "Type", "Children", "Text")

				for _, result := range results {
					for _, block := range result.Children {
						_ = table.Append(blockRow(result.Parent, block))
					}
				}
			})
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch every page of children")

	return cmd
}

// fetchBlockChildren reads the children of every id concurrently. Results
// keep the order of ids.
func fetchBlockChildren(ctx context.Context, client notion.Client, ids []notion.BlockID, all bool) ([]BlockChildren, error) {
	results := make([]BlockChildren, len(ids))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(constants.DefaultConcurrencyLimit)

	for i, id := range ids {
		group.Go(func() error {
			fetch := func(ctx context.Context, paging notion.Paging) (*notion.ListResponse[notion.Block], error) {
				return client.GetBlockChildrenPage(ctx, id, paging)
			}

			children, err := fetchList(ctx, fetch, 0, all)
			if err != nil {
				return fmt.Errorf("failed to get children of %s: %w", id, err)
			}

			results[i] = BlockChildren{Parent: id, Children: children}

			return nil
		})
	}

	err := group.Wait()
	if err != nil {
		return nil, err
	}

	return results, nil
}

func blockRow(parent notion.BlockID, block notion.Block) []string {
	common, ok := notion.CommonOf(block)
	if !ok {
		return []string{parent.Value(), NotAvailable, string(block.Type()), NotAvailable, None}
	}

	return []string{
		parent.Value(),
		common.ID.Value(),
		string(block.Type()),
		strconv.FormatBool(common.HasChildren),
		truncate(orNone(notion.PlainText(block))),
	}
}
