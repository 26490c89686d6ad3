package client

import (
	"context"
	"errors"
	"sync"

	"github.com/matjipduo/backend/internal/model"
	"github.com/matjipduo/backend/internal/types"
)

// ErrToggleInFlight means a bookmark flip for that entity has not
// come back yet. The caller should disable the control rather than
// queue a second flip: two overlapping flips can revert to the wrong
// value when the first one fails late.
var ErrToggleInFlight = errors.New("bookmark toggle already in flight")

// BookmarkView is a screen's local copy of a fetched list. It has no
// authority over the data: an optimistic flip not confirmed by the
// server is rolled back, and a refresh that returns after a newer
// refresh started is discarded so an old filter's slow response can
// never overwrite a new filter's rows.
type BookmarkView[T any] struct {
	mu       sync.Mutex
	items    []T
	gen      uint64
	inflight map[int64]bool

	id          func(T) int64
	bookmarked  func(T) bool
	setBookmark func(*T, bool)
	persist     func(context.Context, int64, bool) error
}

// NewBookmarkView creates a view over any entity with an id and a
// bookmark flag.
func NewBookmarkView[T any](
	id func(T) int64,
	bookmarked func(T) bool,
	setBookmark func(*T, bool),
	persist func(context.Context, int64, bool) error,
) *BookmarkView[T] {
	return &BookmarkView[T]{
		inflight:    make(map[int64]bool),
		id:          id,
		bookmarked:  bookmarked,
		setBookmark: setBookmark,
		persist:     persist,
	}
}

// Items returns a copy of the current list.
func (v *BookmarkView[T]) Items() []T {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]T, len(v.items))
	copy(out, v.items)
	return out
}

// Refresh fetches a fresh list and applies it only if no newer
// refresh has started since; stale responses are dropped.
func (v *BookmarkView[T]) Refresh(ctx context.Context, fetch func(context.Context) ([]T, error)) error {
	v.mu.Lock()
	v.gen++
	gen := v.gen
	v.mu.Unlock()

	items, err := fetch(ctx)
	if err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.gen {
		return nil // a newer refresh owns the view now
	}
	v.items = items
	return nil
}

// ToggleBookmark optimistically flips one entity's bookmark flag and
// persists it, reverting the local flip if persistence fails. Only
// one flip per entity may be in flight.
func (v *BookmarkView[T]) ToggleBookmark(ctx context.Context, id int64) error {
	v.mu.Lock()
	if v.inflight[id] {
		v.mu.Unlock()
		return ErrToggleInFlight
	}
	v.inflight[id] = true
	v.mu.Unlock()
	defer func() {
		v.mu.Lock()
		delete(v.inflight, id)
		v.mu.Unlock()
	}()

	field := BoolField{
		Read: func() bool {
			v.mu.Lock()
			defer v.mu.Unlock()
			for _, item := range v.items {
				if v.id(item) == id {
					return v.bookmarked(item)
				}
			}
			return false
		},
		Apply: func(value bool) {
			v.mu.Lock()
			defer v.mu.Unlock()
			for i := range v.items {
				if v.id(v.items[i]) == id {
					v.setBookmark(&v.items[i], value)
					return
				}
			}
		},
		Persist: func(ctx context.Context, value bool) error {
			return v.persist(ctx, id, value)
		},
	}
	return field.Toggle(ctx)
}

// MenuView is the menu list a screen holds, bound to the API client.
type MenuView struct {
	*BookmarkView[model.Menu]
	client *Client
}

// NewMenuView creates a new MenuView instance.
func NewMenuView(c *Client) *MenuView {
	return &MenuView{
		BookmarkView: NewBookmarkView(
			func(m model.Menu) int64 { return m.ID },
			model.Menu.Bookmarked,
			func(m *model.Menu, value bool) { m.Bookmark = &value },
			c.UpdateMenuBookmark,
		),
		client: c,
	}
}

// Refresh reloads the view through the menu filter.
func (v *MenuView) Refresh(ctx context.Context, filter types.MenuFilter, onlyBookmarked bool) error {
	return v.BookmarkView.Refresh(ctx, func(ctx context.Context) ([]model.Menu, error) {
		return v.client.ListMenus(ctx, filter, onlyBookmarked)
	})
}

// RestaurantView is the restaurant list a screen holds, bound to the
// API client.
type RestaurantView struct {
	*BookmarkView[model.Restaurant]
	client *Client
}

// NewRestaurantView creates a new RestaurantView instance.
func NewRestaurantView(c *Client) *RestaurantView {
	return &RestaurantView{
		BookmarkView: NewBookmarkView(
			func(r model.Restaurant) int64 { return r.ID },
			model.Restaurant.Bookmarked,
			func(r *model.Restaurant, value bool) { r.Bookmark = &value },
			c.UpdateRestaurantBookmark,
		),
		client: c,
	}
}

// Refresh reloads the view through the restaurant filter.
func (v *RestaurantView) Refresh(ctx context.Context, filter types.RestaurantFilter) error {
	return v.BookmarkView.Refresh(ctx, func(ctx context.Context) ([]model.Restaurant, error) {
		return v.client.ListRestaurants(ctx, filter)
	})
}
