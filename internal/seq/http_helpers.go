package seq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dc-tec/seq-operator/internal/constants"
	operatorerrors "github.com/dc-tec/seq-operator/internal/errors"
)

// maxErrorBody bounds how much of an error response is kept in APIError.
const maxErrorBody = 4096

func (c *Client) newRequest(ctx context.Context, method string, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set(constants.HeaderAPIKey, c.apiKey)
	}
	return req, nil
}

func (c *Client) doRequest(req *http.Request, op string) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(req.Context()); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Cancellation is reported as-is so callers can tell it apart from network failures.
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return nil, fmt.Errorf("%s: %w", op, ctxErr)
		}
		wrapped := fmt.Errorf("%s: %w", op, err)
		if operatorerrors.IsTransientConnection(err) {
			return nil, operatorerrors.WrapTransientConnection(wrapped)
		}
		return nil, wrapped
	}
	return resp, nil
}

func drainAndClose(resp *http.Response) {
	if resp == nil || resp.Body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// doAndReadAll executes req and returns the body of a 2xx response.
// Non-2xx responses become an *APIError; 429 and 5xx are additionally marked overloaded.
func (c *Client) doAndReadAll(req *http.Request, op string) ([]byte, error) {
	resp, err := c.doRequest(req, op)
	if err != nil {
		return nil, err
	}

	defer drainAndClose(resp)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, operatorerrors.WrapTransientConnection(fmt.Errorf("%s: failed to read response body: %w", op, err))
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Method:     req.Method,
		Path:       req.URL.Path,
		Message:    errorMessage(body),
	}
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return nil, operatorerrors.WrapTransientRemoteOverloaded(apiErr)
	}
	return nil, apiErr
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request GET %s: %w", path, err)
	}

	body, err := c.doAndReadAll(req, "GET "+path)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response of GET %s: %w", path, err)
	}
	return nil
}

func (c *Client) sendJSON(ctx context.Context, method, path string, in, out any) error {
	var reader io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal %s %s request: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := c.newRequest(ctx, method, path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request %s %s: %w", method, path, err)
	}

	body, err := c.doAndReadAll(req, method+" "+path)
	if err != nil {
		return err
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response of %s %s: %w", method, path, err)
	}
	return nil
}

// errorMessage extracts the message of a Seq error document, falling back to the raw body.
func errorMessage(body []byte) string {
	var doc struct {
		Error string `json:"Error"`
	}
	if err := json.Unmarshal(body, &doc); err == nil && doc.Error != "" {
		return doc.Error
	}
	return string(bytes.TrimSpace(body))
}
