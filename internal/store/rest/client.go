// Package rest implements the entity store against a remote JSON/HTTP
// backend. The path layout matches the upstream collection API:
//
//	GET  /users?email={email}
//	POST /users
//	GET  /openings
//	POST /openings
//	GET  /applications?student_id={id}
//	POST /applications
//
// Transport failures surface as faults.ErrBackendUnavailable; HTTP 409 from
// the creation endpoints is mapped to the store conflict sentinels so the
// remote uniqueness enforcement and the local one are indistinguishable to
// callers.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/placementhub/placementhub/backend/go-services/internal/faults"
	"github.com/placementhub/placementhub/backend/go-services/internal/models"
	"github.com/placementhub/placementhub/backend/go-services/internal/store"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a REST store client. Pass nil to use http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: httpClient,
	}
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", faults.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", faults.ErrBackendUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: GET %s returned %d", faults.ErrBackendUnavailable, path, resp.StatusCode)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decode response: %v", faults.ErrBackendUnavailable, err)
	}
	return nil
}

// postJSON returns conflictErr on HTTP 409.
func (c *Client) postJSON(ctx context.Context, path string, in, out interface{}, conflictErr error) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", faults.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", faults.ErrBackendUnavailable, err)
	}
	if resp.StatusCode == http.StatusConflict {
		return conflictErr
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("%w: POST %s returned %d", faults.ErrBackendUnavailable, path, resp.StatusCode)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decode response: %v", faults.ErrBackendUnavailable, err)
	}
	return nil
}

func (c *Client) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var users []models.User
	if err := c.getJSON(ctx, "/users?email="+url.QueryEscape(email), &users); err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, store.ErrNotFound
	}
	return &users[0], nil
}

func (c *Client) CreateUser(ctx context.Context, u *models.User) (*models.User, error) {
	var created models.User
	if err := c.postJSON(ctx, "/users", u, &created, store.ErrEmailTaken); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) ListOpenings(ctx context.Context) ([]models.Opening, error) {
	out := make([]models.Opening, 0)
	if err := c.getJSON(ctx, "/openings", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateOpening(ctx context.Context, o *models.Opening) (*models.Opening, error) {
	var created models.Opening
	if err := c.postJSON(ctx, "/openings", o, &created, faults.ErrBackendUnavailable); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) ListApplicationsForStudent(ctx context.Context, studentID string) ([]models.Application, error) {
	out := make([]models.Application, 0)
	if err := c.getJSON(ctx, "/applications?student_id="+url.QueryEscape(studentID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateApplication(ctx context.Context, a *models.Application) (*models.Application, error) {
	var created models.Application
	if err := c.postJSON(ctx, "/applications", a, &created, store.ErrDuplicateApplication); err != nil {
		return nil, err
	}
	return &created, nil
}
