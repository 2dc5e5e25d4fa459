package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"auction-console/internal/auctionerrors"
	model "auction-console/internal/models"
	"auction-console/internal/session"
	"auction-console/utils"

	"github.com/benbjohnson/clock"
)

// access describes which token a request carries
type access struct {
	role     model.Role
	required bool
	// credential endpoints report bad passwords as 401; that must not tear the session down
	credential bool
}

var (
	public     = access{role: model.RoleUser}
	user       = access{role: model.RoleUser, required: true}
	admin      = access{role: model.RoleAdmin, required: true}
	userLogin  = access{role: model.RoleUser, credential: true}
	adminLogin = access{role: model.RoleAdmin, credential: true}
)

// Client talks to the remote auction API on behalf of one session
type Client struct {
	baseURL string
	http    *http.Client
	session *session.Session
	clock   clock.Clock
}

// New creates a Client. httpClient and clk may be nil.
func New(baseURL string, httpClient *http.Client, sess *session.Session, clk clock.Clock) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if clk == nil {
		clk = clock.New()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		session: sess,
		clock:   clk,
	}
}

// Session returns the session the client authenticates with
func (c *Client) Session() *session.Session { return c.session }

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do performs one JSON request. out may be nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, acc access, body, out any) error {
	token, err := c.session.Token(ctx, acc.role)
	switch {
	case err == nil:
	case errors.Is(err, auctionerrors.ErrNotAuthenticated) && !acc.required:
		token = ""
	default:
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: encode body: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := utils.GenerateID()
	req.Header.Set("X-Request-ID", requestID)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	utils.Debug("apiclient: request completed", map[string]any{
		"method":     method,
		"path":       path,
		"status":     resp.StatusCode,
		"request_id": requestID,
		"latency":    time.Since(start).String(),
	})

	if resp.StatusCode == http.StatusUnauthorized && !acc.credential {
		// the teardown outlives a caller that gave up after the 401 arrived
		_ = c.session.Invalidate(context.WithoutCancel(ctx))
		return fmt.Errorf("%s %s: %w", method, path, auctionerrors.ErrUnauthorized)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s %s: %w", method, path, decodeError(resp))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}

func decodeError(resp *http.Response) *auctionerrors.APIError {
	apiErr := &auctionerrors.APIError{Status: resp.StatusCode}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil || len(raw) == 0 {
		return apiErr
	}
	var eb errorBody
	if json.Unmarshal(raw, &eb) == nil {
		if eb.Message != "" {
			apiErr.Message = eb.Message
		} else {
			apiErr.Message = eb.Error
		}
		return apiErr
	}
	apiErr.Message = strings.TrimSpace(string(raw))
	return apiErr
}

func productQuery(productID string) url.Values {
	return url.Values{"product_id": []string{productID}}
}
