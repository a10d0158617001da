package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/lister-client/internal/platform/httpclient"
)

// maxResponseBodySize limits how much of a success payload we read.
const maxResponseBodySize = 8 << 20 // 8 MB

// Requester centralizes the HTTP request lifecycle for ACL clients:
// request creation, JSON marshaling, execution via httpclient.Client,
// response body cleanup, status classification, error translation, and
// JSON decoding.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client and logger.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// Do executes an HTTP request against path, relative to the client's base
// URL.
//
// reqBody, when non-nil, is marshaled to JSON. Any 2xx status is success.
// With a nil respBody the payload is discarded. Otherwise a 204 leaves
// respBody untouched, an empty or literal null payload yields an
// *EmptyBodyError, and the payload is decoded into respBody.
func (r *Requester) Do(ctx context.Context, method, path string, reqBody, respBody any) error {
	body := io.Reader(http.NoBody)
	if reqBody != nil {
		data, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshaling %s body for %s: %w", method, path, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.client.URL(path), body)
	if err != nil {
		return fmt.Errorf("creating %s request for %s: %w", method, path, err)
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return r.execute(req, respBody)
}

// Endpoint returns the endpoint of the underlying HTTP client.
func (r *Requester) Endpoint() httpclient.Endpoint {
	return r.client.Endpoint()
}

// closeBody is a helper that closes an HTTP response body and logs on failure.
func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

// execute sends the request, classifies the outcome, and optionally decodes
// the response body. It ensures resp.Body is always closed.
func (r *Requester) execute(req *http.Request, respBody any) error {
	ctx := req.Context()

	resp, err := r.client.Do(ctx, req)
	if resp == nil {
		if err == nil {
			err = fmt.Errorf("%s %s: no response", req.Method, req.URL.Path)
		}
		r.logger.ErrorContext(ctx, "request failed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.String("error", err.Error()),
		)
		return &TransportError{Err: err}
	}
	defer r.closeBody(ctx, resp)

	// httpclient.Do returns both resp and err when retries are exhausted on
	// a retryable status; the response decides the classification.
	if !isSuccess(resp.StatusCode) {
		translateErr := TranslateHTTPError(resp)
		r.logger.ErrorContext(ctx, "unexpected status",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode),
		)
		return translateErr
	}

	if respBody == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBodySize))
		return nil
	}
	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return &TransportError{Err: fmt.Errorf("reading response from %s %s: %w", req.Method, req.URL.Path, err)}
	}
	if isNullPayload(data) {
		return &EmptyBodyError{Code: resp.StatusCode}
	}
	if err := json.Unmarshal(data, respBody); err != nil {
		return &DecodeError{Err: fmt.Errorf("decoding response from %s %s: %w", req.Method, req.URL.Path, err)}
	}

	return nil
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}

func isNullPayload(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
