// Package panelclient talks to the panel HTTP API with the same method set as the
// in-process services, so dashboard code works against either.
package panelclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Skotchmaster/astrion_panel/internal/errx"
	"github.com/Skotchmaster/astrion_panel/internal/models"
	"github.com/Skotchmaster/astrion_panel/internal/transport"
)

const (
	apiPrefix      = "/api/v1"
	defaultTimeout = 10 * time.Second
	retryCount     = 2
	retryWait      = 100 * time.Millisecond
	retryMaxWait   = time.Second
)

type Client struct {
	http *resty.Client
}

type apiError struct {
	Message string `json:"message"`
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")+apiPrefix).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetError(&apiError{}).
		SetRetryCount(retryCount).
		SetRetryWaitTime(retryWait).
		SetRetryMaxWaitTime(retryMaxWait)
	c.AddRetryCondition(retryCondition)
	return &Client{http: c}
}

// retryCondition retries reads on transport failures and 5xx answers. Writes are never retried.
func retryCondition(r *resty.Response, err error) bool {
	if r == nil || r.Request == nil || r.Request.Method != http.MethodGet {
		return false
	}
	if err != nil {
		return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
	}
	return r.StatusCode() >= http.StatusInternalServerError
}

func check(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("panel api: %w", err)
	}
	if !resp.IsError() {
		return nil
	}

	msg := resp.Status()
	if body, ok := resp.Error().(*apiError); ok && body.Message != "" {
		msg = body.Message
	}

	switch resp.StatusCode() {
	case http.StatusNotFound:
		return errx.New(errx.ErrNotFound, http.StatusNotFound, msg)
	case http.StatusBadRequest:
		return errx.New(errx.ErrValidation, http.StatusBadRequest, msg)
	default:
		return errx.New(fmt.Errorf("panel api: unexpected status %d", resp.StatusCode()), resp.StatusCode(), msg)
	}
}

func (c *Client) Options(ctx context.Context) (transport.Options, error) {
	var out transport.Options
	resp, err := c.http.R().SetContext(ctx).SetResult(&out).Get("/options")
	if err := check(resp, err); err != nil {
		return transport.Options{}, err
	}
	return out, nil
}

func (c *Client) ListProducts(ctx context.Context, filters transport.ProductFilters) ([]models.Product, error) {
	req := c.http.R().SetContext(ctx)
	if filters.Search != "" {
		req.SetQueryParam("search", filters.Search)
	}
	if filters.Category != "" {
		req.SetQueryParam("category", string(filters.Category))
	}

	var out transport.ProductList
	resp, err := req.SetResult(&out).Get("/products")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	if out.Data == nil {
		out.Data = []models.Product{}
	}
	return out.Data, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	if id == "" {
		return nil, errx.NotFound(errx.ProductNotFoundMessage)
	}
	var out models.Product
	resp, err := c.http.R().SetContext(ctx).SetPathParam("id", id).SetResult(&out).Get("/products/{id}")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateProduct(ctx context.Context, body transport.CreateProductRequest) (*models.Product, error) {
	var out models.Product
	resp, err := c.http.R().SetContext(ctx).SetBody(body).SetResult(&out).Post("/products")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PatchProduct(ctx context.Context, body transport.PatchProductRequest, id string) (*models.Product, error) {
	if id == "" {
		return nil, errx.NotFound(errx.ProductNotFoundMessage)
	}
	var out models.Product
	resp, err := c.http.R().SetContext(ctx).SetPathParam("id", id).SetBody(body).SetResult(&out).Patch("/products/{id}")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	if id == "" {
		return errx.NotFound(errx.ProductNotFoundMessage)
	}
	resp, err := c.http.R().SetContext(ctx).SetPathParam("id", id).Delete("/products/{id}")
	return check(resp, err)
}

func (c *Client) ListUsers(ctx context.Context, filters transport.UserFilters) ([]models.User, error) {
	req := c.http.R().SetContext(ctx)
	if filters.Search != "" {
		req.SetQueryParam("search", filters.Search)
	}

	var out transport.UserList
	resp, err := req.SetResult(&out).Get("/users")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	if out.Data == nil {
		out.Data = []models.User{}
	}
	return out.Data, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (*models.User, error) {
	if id == "" {
		return nil, errx.NotFound(errx.UserNotFoundMessage)
	}
	var out models.User
	resp, err := c.http.R().SetContext(ctx).SetPathParam("id", id).SetResult(&out).Get("/users/{id}")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateUser(ctx context.Context, body transport.CreateUserRequest) (*models.User, error) {
	var out models.User
	resp, err := c.http.R().SetContext(ctx).SetBody(body).SetResult(&out).Post("/users")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PatchUser(ctx context.Context, body transport.PatchUserRequest, id string) (*models.User, error) {
	if id == "" {
		return nil, errx.NotFound(errx.UserNotFoundMessage)
	}
	var out models.User
	resp, err := c.http.R().SetContext(ctx).SetPathParam("id", id).SetBody(body).SetResult(&out).Patch("/users/{id}")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	if id == "" {
		return errx.NotFound(errx.UserNotFoundMessage)
	}
	resp, err := c.http.R().SetContext(ctx).SetPathParam("id", id).Delete("/users/{id}")
	return check(resp, err)
}
