// Package api is a thin client for the Todoist-compatible REST API.
//
// Every request, GET or not, returns a typed result: either the decoded
// response or an error. Non-2xx responses surface as *StatusError so callers
// can tell an auth failure from a transport failure.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"

	"github.com/tmuir/todomark/internal/models"
)

// Client issues authenticated requests against one base URL.
// It holds no state beyond the HTTP client; responses are never cached.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given base URL, authenticating every
// request with the token as an OAuth2 bearer credential.
func NewClient(ctx context.Context, baseURL, token string) *Client {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: oauth2.NewClient(ctx, src),
	}
}

// StatusError reports a non-2xx response from the service
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("service returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("service returned status %d: %s", e.StatusCode, e.Body)
}

// ListProjects fetches all projects for the account
func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := c.getJSON(ctx, "/projects", &projects); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// ListTasks fetches all active tasks for the account in a single
// unfiltered call. Results are bounded by whatever the service returns in
// one response; there is no pagination.
func (c *Client) ListTasks(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	if err := c.getJSON(ctx, "/tasks", &tasks); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// ListComments fetches all comments attached to one task
func (c *Client) ListComments(ctx context.Context, taskID string) ([]models.Comment, error) {
	var comments []models.Comment
	path := "/comments?task_id=" + url.QueryEscape(taskID)
	if err := c.getJSON(ctx, path, &comments); err != nil {
		return nil, fmt.Errorf("failed to list comments for task %s: %w", taskID, err)
	}
	return comments, nil
}

// CloseTask marks a task as completed on the service
func (c *Client) CloseTask(ctx context.Context, taskID string) error {
	if err := c.post(ctx, "/tasks/"+url.PathEscape(taskID)+"/close"); err != nil {
		return fmt.Errorf("failed to close task %s: %w", taskID, err)
	}
	return nil
}

// ReopenTask reverses a completed task back to active
func (c *Client) ReopenTask(ctx context.Context, taskID string) error {
	if err := c.post(ctx, "/tasks/"+url.PathEscape(taskID)+"/reopen"); err != nil {
		return fmt.Errorf("failed to reopen task %s: %w", taskID, err)
	}
	return nil
}

// getJSON performs a GET and decodes the JSON response body into v
func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	resp, err := c.do(ctx, http.MethodGet, path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("unexpected response body: %w", err)
	}
	return nil
}

// post performs a POST with an empty body, discarding any response body
func (c *Client) post(ctx context.Context, path string) error {
	resp, err := c.do(ctx, http.MethodPost, path)
	if err != nil {
		return err
	}
	return resp.Body.Close()
}

// do issues one authenticated request and converts non-2xx responses into
// *StatusError. The caller owns the response body on success.
func (c *Client) do(ctx context.Context, method, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	return resp, nil
}
