// Package client is the typed Go client for the matjip API. Besides
// plain request wrappers it carries the interaction protocols every
// screen shares: optimistic bookmark toggling with rollback, cached
// list views that drop stale responses, and price-range clamping.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/matjipduo/backend/internal/model"
	"github.com/matjipduo/backend/internal/service"
	"github.com/matjipduo/backend/internal/types"
)

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Client talks to one matjip API server. It is safe for concurrent
// use; the session token is stored after a successful Login.
type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.Mutex
	token string
}

// New creates a new Client instance.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Token returns the current session token, empty before login.
func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &APIError{Status: resp.StatusCode, Message: apiErr.Error}
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// Login exchanges the shared secret for a session token and keeps it
// for subsequent calls.
func (c *Client) Login(ctx context.Context, secret string) error {
	var resp struct {
		Session service.Session `json:"session"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", nil, types.LoginRequest{Secret: secret}, &resp); err != nil {
		return err
	}
	c.mu.Lock()
	c.token = resp.Session.Token
	c.mu.Unlock()
	return nil
}

// Logout revokes the session and forgets the token.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/logout", nil, nil, nil); err != nil {
		return err
	}
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
	return nil
}

func menuFilterQuery(filter types.MenuFilter, onlyBookmarked bool) url.Values {
	q := url.Values{}
	if filter.CuisineStyle != nil {
		q.Set("cuisine_style", *filter.CuisineStyle)
	}
	if filter.MainIngredient != nil {
		q.Set("main_ingredient", *filter.MainIngredient)
	}
	if filter.MealType != nil {
		q.Set("meal_type", *filter.MealType)
	}
	if filter.PriceMin != nil {
		q.Set("price_min", strconv.Itoa(*filter.PriceMin))
	}
	if filter.PriceMax != nil {
		q.Set("price_max", strconv.Itoa(*filter.PriceMax))
	}
	if onlyBookmarked {
		q.Set("bookmarked", "true")
	}
	return q
}

// ListMenus fetches menus matching the filter, name ascending.
func (c *Client) ListMenus(ctx context.Context, filter types.MenuFilter, onlyBookmarked bool) ([]model.Menu, error) {
	var resp struct {
		Menus []model.Menu `json:"menus"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/menus", menuFilterQuery(filter, onlyBookmarked), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Menus, nil
}

// RecommendMenu asks the server for a random pick plus the candidate list.
func (c *Client) RecommendMenu(ctx context.Context, filter types.MenuFilter) (*model.Menu, []model.Menu, error) {
	var resp struct {
		Menu       *model.Menu  `json:"menu"`
		Candidates []model.Menu `json:"candidates"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/menus/recommend", menuFilterQuery(filter, false), nil, &resp); err != nil {
		return nil, nil, err
	}
	return resp.Menu, resp.Candidates, nil
}

// CreateMenu inserts a new menu.
func (c *Client) CreateMenu(ctx context.Context, req types.CreateMenuRequest) (*model.Menu, error) {
	var resp struct {
		Menu *model.Menu `json:"menu"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/menus", nil, req, &resp); err != nil {
		return nil, err
	}
	return resp.Menu, nil
}

// UpdateMenu applies a partial patch.
func (c *Client) UpdateMenu(ctx context.Context, id int64, req types.UpdateMenuRequest) (*model.Menu, error) {
	var resp struct {
		Menu *model.Menu `json:"menu"`
	}
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/v1/menus/%d", id), nil, req, &resp); err != nil {
		return nil, err
	}
	return resp.Menu, nil
}

// UpdateMenuBookmark sets a menu's bookmark flag.
func (c *Client) UpdateMenuBookmark(ctx context.Context, id int64, value bool) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/v1/menus/%d/bookmark", id), nil, types.UpdateBookmarkRequest{Bookmark: value}, nil)
}

// ListRestaurants fetches restaurants matching the filter, name ascending.
func (c *Client) ListRestaurants(ctx context.Context, filter types.RestaurantFilter) ([]model.Restaurant, error) {
	q := url.Values{}
	if filter.Address != nil {
		q.Set("address", *filter.Address)
	}
	if filter.Rating != nil {
		q.Set("rating", strconv.FormatFloat(*filter.Rating, 'f', -1, 64))
	}
	if filter.OnlyBookmarked {
		q.Set("bookmarked", "true")
	}
	var resp struct {
		Restaurants []model.Restaurant `json:"restaurants"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/restaurants", q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Restaurants, nil
}

// ListAllRestaurants fetches every restaurant, newest first.
func (c *Client) ListAllRestaurants(ctx context.Context) ([]model.Restaurant, error) {
	q := url.Values{}
	q.Set("all", "true")
	var resp struct {
		Restaurants []model.Restaurant `json:"restaurants"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/restaurants", q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Restaurants, nil
}

// CreateRestaurant inserts a new restaurant.
func (c *Client) CreateRestaurant(ctx context.Context, req types.CreateRestaurantRequest) (*model.Restaurant, error) {
	var resp struct {
		Restaurant *model.Restaurant `json:"restaurant"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/restaurants", nil, req, &resp); err != nil {
		return nil, err
	}
	return resp.Restaurant, nil
}

// UpdateRestaurant applies a partial patch.
func (c *Client) UpdateRestaurant(ctx context.Context, id int64, req types.UpdateRestaurantRequest) (*model.Restaurant, error) {
	var resp struct {
		Restaurant *model.Restaurant `json:"restaurant"`
	}
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/v1/restaurants/%d", id), nil, req, &resp); err != nil {
		return nil, err
	}
	return resp.Restaurant, nil
}

// UpdateRestaurantBookmark sets a restaurant's bookmark flag.
func (c *Client) UpdateRestaurantBookmark(ctx context.Context, id int64, value bool) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/v1/restaurants/%d/bookmark", id), nil, types.UpdateBookmarkRequest{Bookmark: value}, nil)
}

// Regions fetches the distinct region tokens for the region dropdown.
func (c *Client) Regions(ctx context.Context) ([]string, error) {
	var resp struct {
		Regions []string `json:"regions"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/restaurants/regions", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Regions, nil
}

// MenusForRestaurant fetches the menus served at a restaurant.
func (c *Client) MenusForRestaurant(ctx context.Context, restaurantID int64) ([]model.Menu, error) {
	var resp struct {
		Menus []model.Menu `json:"menus"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/restaurants/%d/menus", restaurantID), nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Menus, nil
}

// MenuDetails fetches the course-ranked relation/menu pairs for a restaurant.
func (c *Client) MenuDetails(ctx context.Context, restaurantID int64) ([]service.MenuDetail, error) {
	var resp struct {
		Details []service.MenuDetail `json:"details"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/restaurants/%d/menu-details", restaurantID), nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Details, nil
}

// RestaurantsForMenu fetches the restaurants serving a menu.
func (c *Client) RestaurantsForMenu(ctx context.Context, menuID int64) ([]model.Restaurant, error) {
	var resp struct {
		Restaurants []model.Restaurant `json:"restaurants"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/menus/%d/restaurants", menuID), nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Restaurants, nil
}

// CreateRelations bulk-inserts relation rows. An empty batch skips
// the request entirely.
func (c *Client) CreateRelations(ctx context.Context, rows []types.CreateRelationRequest) error {
	if len(rows) == 0 {
		return nil
	}
	return c.do(ctx, http.MethodPost, "/api/v1/relations", nil, rows, nil)
}

// DeleteRelation removes one relation row. A zero id is a local no-op.
func (c *Client) DeleteRelation(ctx context.Context, id int64) error {
	if id == 0 {
		return nil
	}
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/relations/%d", id), nil, nil, nil)
}

// ListRelationsByRestaurant fetches a restaurant's join rows, newest first.
func (c *Client) ListRelationsByRestaurant(ctx context.Context, restaurantID int64) ([]model.Relation, error) {
	q := url.Values{}
	q.Set("restaurant_id", strconv.FormatInt(restaurantID, 10))
	return c.listRelations(ctx, q)
}

// ListRelationsByMenu fetches a menu's join rows, newest first.
func (c *Client) ListRelationsByMenu(ctx context.Context, menuID int64) ([]model.Relation, error) {
	q := url.Values{}
	q.Set("menu_id", strconv.FormatInt(menuID, 10))
	return c.listRelations(ctx, q)
}

func (c *Client) listRelations(ctx context.Context, q url.Values) ([]model.Relation, error) {
	var resp struct {
		Relations []model.Relation `json:"relations"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/relations", q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Relations, nil
}
