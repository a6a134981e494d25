// Package netx wraps the outbound HTTP transport used to reach the API.
package netx

import (
	"context"
	"fmt"

	"github.com/valyala/fasthttp"
)

// Response is the raw outcome of an HTTP exchange. Body is a private copy
// and stays valid after the underlying fasthttp buffers are released.
type Response struct {
	StatusCode int
	Body       []byte
}

// PostJSON sends body to url as an application/json POST using c.
//
// A deadline on ctx bounds the whole exchange; without one the call waits
// for the server indefinitely. Any HTTP status is returned as a Response,
// only transport failures produce an error.
func PostJSON(ctx context.Context, c *fasthttp.Client, url string, body []byte, headers map[string]string) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	req.SetBody(body)

	var err error
	if deadline, ok := ctx.Deadline(); ok {
		err = c.DoDeadline(req, resp, deadline)
	} else {
		err = c.Do(req, resp)
	}
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", url, err)
	}

	return &Response{
		StatusCode: resp.StatusCode(),
		Body:       append([]byte(nil), resp.Body()...),
	}, nil
}
