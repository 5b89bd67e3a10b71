// Package backend is the typed client for the upstream marketplace API.
// The backend owns matching, classification, persistence, and
// authentication; this client only shapes requests, attaches the bearer
// token, and maps failures onto the gateway's error taxonomy.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"fundilink/models"
	"fundilink/utils"

	"go.uber.org/zap"
)

// TokenSource yields the current bearer token, empty when signed out.
type TokenSource interface {
	Token() string
}

// Client talks to the upstream API.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

// postJSON issues an authenticated-or-not POST with a JSON body and decodes
// a 2xx response into out (out may be nil).
func (c *Client) postJSON(ctx context.Context, path string, requireAuth bool, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, requireAuth, out)
}

// getJSON issues a GET and decodes a 2xx response into out.
func (c *Client) getJSON(ctx context.Context, path string, requireAuth bool, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	return c.do(req, requireAuth, out)
}

// putJSON issues a PUT with a JSON body.
func (c *Client) putJSON(ctx context.Context, path string, requireAuth bool, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, requireAuth, out)
}

// postMultipart issues a POST with an already-assembled multipart body.
func (c *Client) postMultipart(ctx context.Context, path string, requireAuth bool, contentType string, body io.Reader, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	return c.do(req, requireAuth, out)
}

func (c *Client) do(req *http.Request, requireAuth bool, out interface{}) error {
	token := c.tokens.Token()
	if requireAuth && token == "" {
		return ErrAuthRequired
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		utils.GetLogger().Warn("Backend request failed",
			zap.String("path", req.URL.Path), zap.Error(err))
		return ErrUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return ErrAuthRequired
	}
	if resp.StatusCode >= 400 {
		return c.rejectionError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		utils.GetLogger().Warn("Backend response decode failed",
			zap.String("path", req.URL.Path), zap.Error(err))
		return ErrUnavailable
	}
	return nil
}

// rejectionError shapes a 4xx/5xx body into the error taxonomy. The
// upstream's detail field may be a plain string or a structured validation
// list of {loc, msg} objects.
func (c *Client) rejectionError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	var structured struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &structured); err != nil || len(structured.Detail) == 0 {
		if resp.StatusCode >= 500 {
			return ErrUnavailable
		}
		return &APIError{Status: resp.StatusCode, Detail: "Request failed"}
	}

	var detail string
	if err := json.Unmarshal(structured.Detail, &detail); err == nil {
		if resp.StatusCode >= 500 {
			return ErrUnavailable
		}
		return &APIError{Status: resp.StatusCode, Detail: detail}
	}

	var items []struct {
		Loc []json.RawMessage `json:"loc"`
		Msg string            `json:"msg"`
	}
	if err := json.Unmarshal(structured.Detail, &items); err == nil {
		apiErr := &APIError{Status: resp.StatusCode, Detail: "Validation failed"}
		for _, item := range items {
			field := "unknown field"
			if n := len(item.Loc); n > 0 {
				var name string
				if json.Unmarshal(item.Loc[n-1], &name) != nil {
					var idx int
					if json.Unmarshal(item.Loc[n-1], &idx) == nil {
						name = fmt.Sprintf("%d", idx)
					}
				}
				if name != "" {
					field = name
				}
			}
			apiErr.Fields = append(apiErr.Fields, models.FieldError{Field: field, Message: item.Msg})
		}
		return apiErr
	}

	if resp.StatusCode >= 500 {
		return ErrUnavailable
	}
	return &APIError{Status: resp.StatusCode, Detail: string(structured.Detail)}
}
