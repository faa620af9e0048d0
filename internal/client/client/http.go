package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/safetytracker/tracker/internal/common"
	"github.com/safetytracker/tracker/internal/logging"
)

// TokenSource yields the current bearer credential, "" when signed out.
type TokenSource interface {
	Token() string
}

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	logger     logging.Logger
}

// NewHTTPClient builds a transport for baseURL. tokens may be nil, in which
// case requests go out unauthenticated.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, logger logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		logger:     logger,
	}
}

// Do sends in (JSON-encoded, when non-nil) to path and decodes a 2xx body
// into out (when non-nil and the body is not empty).
func (c *HTTPClient) Do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
		}
	}

	log := c.logger.With("method", method, "path", path, "request_id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		log.Warn(ctx, "backend unreachable", "error", err.Error())
		return &RequestFailure{Method: method, Path: path, Message: err.Error(), Err: ErrUnavailable}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RequestFailure{Method: method, Path: path, Status: resp.StatusCode,
			Message: "reading response: " + err.Error(), Err: ErrUnavailable}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		failure := &RequestFailure{
			Method:  method,
			Path:    path,
			Status:  resp.StatusCode,
			Message: failureMessage(resp.StatusCode, raw),
			Err:     sentinelFor(resp.StatusCode),
		}
		log.Warn(ctx, "backend rejected request", "status", resp.StatusCode, "message", failure.Message)
		return failure
	}

	log.Debug(ctx, "backend call ok", "status", resp.StatusCode)

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &RequestFailure{Method: method, Path: path, Status: resp.StatusCode,
			Message: "decoding response: " + err.Error(), Err: ErrRequestFailed}
	}
	return nil
}

// failureMessage pulls the human readable part out of an error body. The
// backend answers with {"detail": ...}, {"error": ...}, {"message": ...} or
// a field map like {"title": ["This field is required."]}.
func failureMessage(status int, raw []byte) string {
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err == nil && len(obj) > 0 {
		for _, key := range []string{"detail", "error", "message", "err"} {
			if v, ok := obj[key].(string); ok && v != "" {
				return v
			}
		}
		return fieldErrors(obj)
	}

	if text := strings.TrimSpace(string(raw)); text != "" && len(text) <= 200 && !strings.HasPrefix(text, "<") {
		return text
	}
	return http.StatusText(status)
}

func fieldErrors(obj map[string]any) string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		switch v := obj[k].(type) {
		case []any:
			msgs := make([]string, 0, len(v))
			for _, m := range v {
				msgs = append(msgs, fmt.Sprint(m))
			}
			parts = append(parts, k+": "+strings.Join(msgs, " "))
		default:
			parts = append(parts, fmt.Sprintf("%s: %v", k, v))
		}
	}
	return strings.Join(parts, "; ")
}

// IsUnavailable reports whether err means the backend could not be reached.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
