package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sanyogchangmai/Anime-Facts-Webpage/internal/client/models"
	"github.com/sanyogchangmai/Anime-Facts-Webpage/internal/common"
	"github.com/sanyogchangmai/Anime-Facts-Webpage/internal/logging"
	"github.com/sanyogchangmai/Anime-Facts-Webpage/internal/netx"
	"github.com/valyala/fasthttp"
)

const (
	signupPath = "/users/signup"
	loginPath  = "/users/login"
)

type HTTPClient struct {
	baseURL string
	timeout time.Duration
	http    *fasthttp.Client
	log     logging.Logger

	newRequestID func() string
}

// NewHTTPClient returns a Client talking JSON to baseURL. A zero timeout
// means requests wait for the server as long as it takes.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	if log == nil {
		log = logging.Nop()
	}
	return &HTTPClient{
		baseURL:      strings.TrimRight(baseURL, "/"),
		timeout:      timeout,
		http:         &fasthttp.Client{Name: "animefacts-cli"},
		log:          log.With("component", "api"),
		newRequestID: uuid.NewString,
	}
}

func (c *HTTPClient) Signup(ctx context.Context, creds models.Credentials) (string, error) {
	return c.post(ctx, signupPath, creds)
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (string, error) {
	return c.post(ctx, loginPath, creds)
}

func (c *HTTPClient) post(ctx context.Context, path string, creds models.Credentials) (string, error) {
	body, err := json.Marshal(creds)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	reqID := c.newRequestID()
	url := c.baseURL + path
	log := c.log.With("request_id", reqID, "endpoint", url)

	log.Debug(ctx, "sending request")
	started := time.Now()

	resp, err := netx.PostJSON(ctx, c.http, url, body, map[string]string{common.RequestIDHeaderName: reqID})
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	log.Info(ctx, "response received", "http_status", resp.StatusCode, "elapsed", time.Since(started))

	var env models.Envelope
	if err := json.Unmarshal(resp.Body, &env); err != nil {
		log.Warn(ctx, "undecodable response body", "error", err)
		return "", fmt.Errorf("%w: %w", ErrBadResponse, err)
	}

	if !env.Succeeded() {
		return "", &APIError{Status: env.Status, Message: env.Message, HTTPStatus: resp.StatusCode}
	}

	token := env.Token()
	if token == "" {
		log.Warn(ctx, "success response without token")
		return "", fmt.Errorf("%w: success without token", ErrBadResponse)
	}
	return token, nil
}
