// Package pagination follows list cursors on behalf of callers such as the
// CLI. The notion.Client operations themselves always make one request.
package pagination

import (
	"context"
	"errors"
	"fmt"

	"github.com/fivetwenty-io/notion-client/internal/constants"
	"github.com/fivetwenty-io/notion-client/pkg/notion"
)

// ErrNoMoreItems is returned by Iterator.Next once the list is exhausted.
var ErrNoMoreItems = errors.New("no more items")

// PageFetcher loads one page of a list endpoint. Client methods such as
// ListUsersPage and GetBlockChildrenPage have this shape once bound to their
// identifier.
type PageFetcher[T any] func(ctx context.Context, paging notion.Paging) (*notion.ListResponse[T], error)

// Options bounds FetchAll.
type Options struct {
	// PageSize is sent with every request. Zero leaves it to the server.
	PageSize int
	// MaxPages stops after that many pages. Zero means no limit.
	MaxPages int
}

// DefaultOptions requests full pages without a page limit.
func DefaultOptions() *Options {
	return &Options{PageSize: constants.MaxPageSize}
}

// Iterator walks the items of a paginated endpoint one by one, fetching
// pages lazily.
type Iterator[T any] struct {
	ctx    context.Context
	fetch  PageFetcher[T]
	paging notion.Paging
	items  []T
	index  int
	done   bool
	err    error
}

// NewIterator starts iterating at paging.
func NewIterator[T any](ctx context.Context, fetch PageFetcher[T], paging notion.Paging) *Iterator[T] {
	return &Iterator[T]{
		ctx:    ctx,
		fetch:  fetch,
		paging: paging,
	}
}

// HasNext reports whether Next will return an item. It fetches the next page
// when the current one is exhausted; a fetch failure is returned by Next.
func (it *Iterator[T]) HasNext() bool {
	for it.index >= len(it.items) {
		if it.err != nil {
			return true
		}

		if it.done {
			return false
		}

		it.fetchPage()
	}

	return true
}

// Next returns the following item.
func (it *Iterator[T]) Next() (T, error) {
	var zero T

	if !it.HasNext() {
		return zero, fmt.Errorf("pagination iterator: %w", ErrNoMoreItems)
	}

	if it.err != nil {
		err := it.err
		it.err = nil
		it.done = true

		return zero, err
	}

	item := it.items[it.index]
	it.index++

	return item, nil
}

// All drains the iterator.
func (it *Iterator[T]) All() ([]T, error) {
	var all []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return all, err
		}

		all = append(all, item)
	}

	return all, nil
}

// ForEach calls fn for every remaining item and stops at the first error.
func (it *Iterator[T]) ForEach(fn func(T) error) error {
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}

	return nil
}

func (it *Iterator[T]) fetchPage() {
	page, err := it.fetch(it.ctx, it.paging)
	if err != nil {
		it.err = err

		return
	}

	it.items = page.Results
	it.index = 0

	next, ok := page.NextPage(it.paging)
	if !ok {
		it.done = true

		return
	}

	it.paging = next
}

// FetchAll collects every item of a paginated endpoint. opts may be nil.
func FetchAll[T any](ctx context.Context, fetch PageFetcher[T], opts *Options) ([]T, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	paging := notion.Paging{}
	if opts.PageSize > 0 {
		paging.PageSize = notion.Ptr(opts.PageSize)
	}

	var all []T

	for pages := 1; ; pages++ {
		page, err := fetch(ctx, paging)
		if err != nil {
			return all, err
		}

		all = append(all, page.Results...)

		if opts.MaxPages > 0 && pages >= opts.MaxPages {
			return all, nil
		}

		next, ok := page.NextPage(paging)
		if !ok {
			return all, nil
		}

		paging = next
	}
}
