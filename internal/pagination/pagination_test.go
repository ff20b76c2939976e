package pagination_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/notion-client/internal/pagination"
	"github.com/fivetwenty-io/notion-client/pkg/notion"
)

// mockPages serves pages keyed by start cursor; "" is the first page.
type mockPages struct {
	pages    map[string][]string
	next     map[string]string
	requests []notion.Paging
	failOn   string
}

var errFetch = errors.New("fetch failed")

func (m *mockPages) fetch(_ context.Context, paging notion.Paging) (*notion.ListResponse[string], error) {
	m.requests = append(m.requests, paging)

	cursor := ""
	if paging.StartCursor != nil {
		cursor = string(*paging.StartCursor)
	}

	if m.failOn != "" && cursor == m.failOn {
		return nil, errFetch
	}

	response := &notion.ListResponse[string]{Results: m.pages[cursor]}

	if next, ok := m.next[cursor]; ok {
		nextCursor := notion.PagingCursor(next)
		response.NextCursor = &nextCursor
		response.HasMore = true
	}

	return response, nil
}

func threePages() *mockPages {
	return &mockPages{
		pages: map[string][]string{
			"":   {"1", "2"},
			"c2": {"3", "4"},
			"c3": {"5"},
		},
		next: map[string]string{
			"":   "c2",
			"c2": "c3",
		},
	}
}

func TestIterator_HasNext(t *testing.T) {
	t.Parallel()

	mock := &mockPages{
		pages: map[string][]string{"": {"1", "2"}, "c2": {"3"}},
		next:  map[string]string{"": "c2"},
	}

	iterator := pagination.NewIterator(context.Background(), mock.fetch, notion.Paging{})

	assert.True(t, iterator.HasNext())

	item1, err := iterator.Next()
	require.NoError(t, err)
	assert.Equal(t, "1", item1)

	assert.True(t, iterator.HasNext())

	item2, err := iterator.Next()
	require.NoError(t, err)
	assert.Equal(t, "2", item2)

	assert.True(t, iterator.HasNext())

	item3, err := iterator.Next()
	require.NoError(t, err)
	assert.Equal(t, "3", item3)

	assert.False(t, iterator.HasNext())

	_, err = iterator.Next()
	require.ErrorIs(t, err, pagination.ErrNoMoreItems)
}

func TestIterator_All(t *testing.T) {
	t.Parallel()

	mock := threePages()
	iterator := pagination.NewIterator(context.Background(), mock.fetch, notion.Paging{PageSize: notion.Ptr(2)})

	all, err := iterator.All()
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, all)

	require.Len(t, mock.requests, 3)

	for _, request := range mock.requests {
		require.NotNil(t, request.PageSize)
		assert.Equal(t, 2, *request.PageSize)
	}
}

func TestIterator_ForEach(t *testing.T) {
	t.Parallel()

	mock := &mockPages{pages: map[string][]string{"": {"1", "2"}}}
	iterator := pagination.NewIterator(context.Background(), mock.fetch, notion.Paging{})

	var collected []string

	err := iterator.ForEach(func(item string) error {
		collected = append(collected, item)

		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, collected)
}

func TestIterator_Error(t *testing.T) {
	t.Parallel()

	mock := threePages()
	mock.failOn = "c2"

	iterator := pagination.NewIterator(context.Background(), mock.fetch, notion.Paging{})

	all, err := iterator.All()
	require.ErrorIs(t, err, errFetch)
	assert.Equal(t, []string{"1", "2"}, all)
	assert.False(t, iterator.HasNext())
}

func TestFetchAll(t *testing.T) {
	t.Parallel()

	mock := threePages()

	items, err := pagination.FetchAll(context.Background(), mock.fetch, nil)
	require.NoError(t, err)
	assert.Len(t, items, 5)

	require.NotNil(t, mock.requests[0].PageSize)
	assert.Equal(t, 100, *mock.requests[0].PageSize)
	assert.Nil(t, mock.requests[0].StartCursor)
	assert.Equal(t, notion.PagingCursor("c3"), *mock.requests[2].StartCursor)
}

func TestFetchAll_WithMaxPages(t *testing.T) {
	t.Parallel()

	mock := threePages()

	items, err := pagination.FetchAll(context.Background(), mock.fetch, &pagination.Options{MaxPages: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4"}, items)
	assert.Len(t, mock.requests, 2)
	assert.Nil(t, mock.requests[0].PageSize)
}
