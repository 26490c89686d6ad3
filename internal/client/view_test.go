package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matjipduo/backend/internal/model"
)

func newMenuTestView(persist func(context.Context, int64, bool) error) *BookmarkView[model.Menu] {
	return NewBookmarkView(
		func(m model.Menu) int64 { return m.ID },
		model.Menu.Bookmarked,
		func(m *model.Menu, value bool) { m.Bookmark = &value },
		persist,
	)
}

func loadView(t *testing.T, view *BookmarkView[model.Menu], items []model.Menu) {
	t.Helper()
	require.NoError(t, view.Refresh(context.Background(), func(context.Context) ([]model.Menu, error) {
		return items, nil
	}))
}

func TestRefreshDropsStaleResponse(t *testing.T) {
	view := newMenuTestView(nil)
	ctx := context.Background()

	slowStarted := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error)

	// a slow fetch for the old filter starts first
	go func() {
		done <- view.Refresh(ctx, func(context.Context) ([]model.Menu, error) {
			close(slowStarted)
			<-release
			return []model.Menu{{ID: 1, Name: "옛필터결과"}}, nil
		})
	}()
	<-slowStarted

	// a newer refresh lands while the old one is still in flight
	loadView(t, view, []model.Menu{{ID: 2, Name: "새필터결과"}})

	close(release)
	require.NoError(t, <-done)

	items := view.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "새필터결과", items[0].Name)
}

func TestToggleBookmarkOptimisticFlip(t *testing.T) {
	var persisted []bool
	view := newMenuTestView(func(_ context.Context, id int64, value bool) error {
		persisted = append(persisted, value)
		return nil
	})
	loadView(t, view, []model.Menu{{ID: 1, Name: "라멘"}})

	require.NoError(t, view.ToggleBookmark(context.Background(), 1))
	assert.True(t, view.Items()[0].Bookmarked())
	assert.Equal(t, []bool{true}, persisted)

	require.NoError(t, view.ToggleBookmark(context.Background(), 1))
	assert.False(t, view.Items()[0].Bookmarked())
	assert.Equal(t, []bool{true, false}, persisted)
}

func TestToggleBookmarkRevertsWhenPersistFails(t *testing.T) {
	storeErr := errors.New("store down")
	view := newMenuTestView(func(context.Context, int64, bool) error {
		return storeErr
	})
	loadView(t, view, []model.Menu{{ID: 1, Name: "라멘"}})

	err := view.ToggleBookmark(context.Background(), 1)
	assert.ErrorIs(t, err, storeErr)
	assert.False(t, view.Items()[0].Bookmarked())
}

func TestToggleBookmarkRejectsOverlappingFlip(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	view := newMenuTestView(func(context.Context, int64, bool) error {
		close(entered)
		<-release
		return nil
	})
	loadView(t, view, []model.Menu{{ID: 1, Name: "라멘"}})

	done := make(chan error)
	go func() {
		done <- view.ToggleBookmark(context.Background(), 1)
	}()
	<-entered

	err := view.ToggleBookmark(context.Background(), 1)
	assert.ErrorIs(t, err, ErrToggleInFlight)

	close(release)
	require.NoError(t, <-done)
	assert.True(t, view.Items()[0].Bookmarked())
}

func TestItemsReturnsACopy(t *testing.T) {
	view := newMenuTestView(nil)
	loadView(t, view, []model.Menu{{ID: 1, Name: "라멘"}})

	items := view.Items()
	items[0].Name = "변조"

	assert.Equal(t, "라멘", view.Items()[0].Name)
}
