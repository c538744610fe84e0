// Package client is a Go client for the Motosync API. It mirrors the
// mobile app's HTTP layer: a base URL, a request timeout and a stored
// bearer token attached to every request.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"motosync-api/controllers"
	"motosync-api/models"
	"motosync-api/utils"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SetToken stores the bearer token attached to subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// APIError is a non-2xx response decoded into the server's error shape.
type APIError struct {
	StatusCode int
	Body       utils.ErrorResponse
}

func (e *APIError) Error() string {
	msg := e.Body.Error
	if e.Body.Message != "" {
		msg = msg + ": " + e.Body.Message
	}
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, msg)
}

// Page is the Spring-style page wrapper the list endpoints return.
type Page[T any] struct {
	Content       []T `json:"content"`
	Page          int `json:"page"`
	Size          int `json:"size"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
}

// Login authenticates and stores the returned token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*controllers.LoginResponse, error) {
	var resp controllers.LoginResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, body, &resp); err != nil {
		return nil, err
	}
	c.token = resp.Token
	return &resp, nil
}

func (c *Client) ListYards(ctx context.Context, page, size int, search string) (*Page[controllers.YardResponse], error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	if search != "" {
		q.Set("search", search)
	}
	var resp Page[controllers.YardResponse]
	if err := c.do(ctx, http.MethodGet, "/api/patios", q, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetYard(ctx context.Context, id int) (*controllers.YardResponse, error) {
	var resp controllers.YardResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/patios/%d", id), nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CreateYard(ctx context.Context, name, address string) (*models.Yard, error) {
	var resp models.Yard
	body := map[string]string{"nome": name, "endereco": address}
	if err := c.do(ctx, http.MethodPost, "/api/patios", nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DeleteYard(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/patios/%d", id), nil, nil, nil)
}

// ListSpots lists spots; yardID 0 lists every yard's spots.
func (c *Client) ListSpots(ctx context.Context, yardID, page, size int) (*Page[controllers.SpotResponse], error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	if yardID != 0 {
		q.Set("patio", strconv.Itoa(yardID))
	}
	var resp Page[controllers.SpotResponse]
	if err := c.do(ctx, http.MethodGet, "/api/vagas", q, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CreateSpot(ctx context.Context, code string, yardID int) (*models.Spot, error) {
	var resp models.Spot
	body := map[string]interface{}{"codigo": code, "id_patio": yardID}
	if err := c.do(ctx, http.MethodPost, "/api/vagas", nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DeleteSpot(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/vagas/%d", id), nil, nil, nil)
}

func (c *Client) ListMotorcycles(ctx context.Context, page, size int, search string) (*Page[controllers.MotorcycleResponse], error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	if search != "" {
		q.Set("search", search)
	}
	var resp Page[controllers.MotorcycleResponse]
	if err := c.do(ctx, http.MethodGet, "/api/motos", q, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CreateMotorcycle(ctx context.Context, req controllers.MotorcycleRequest) (*controllers.MotorcycleResponse, error) {
	var resp controllers.MotorcycleResponse
	if err := c.do(ctx, http.MethodPost, "/api/motos", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) UpdateMotorcycle(ctx context.Context, id int, req controllers.MotorcycleRequest) (*controllers.MotorcycleResponse, error) {
	var resp controllers.MotorcycleResponse
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/motos/%d", id), nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DeleteMotorcycle(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/motos/%d", id), nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u = u + "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		// Best effort: the server may not have answered with JSON.
		_ = json.Unmarshal(data, &apiErr.Body)
		return apiErr
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
