// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// DefaultInterval is the spacing NCBI asks of clients without an API key.
const DefaultInterval = 500 * time.Millisecond

// Pacer sends requests no closer together than a fixed interval. It does
// not retry; a failed request is returned to the caller as-is. Pacer is
// safe for concurrent use.
type Pacer struct {
	client    *http.Client
	limiter   *rate.Limiter
	userAgent string
}

// NewPacer wraps client. An interval of zero or less disables pacing.
func NewPacer(client *http.Client, interval time.Duration, userAgent string) *Pacer {
	if client == nil {
		client = http.DefaultClient
	}
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &Pacer{
		client:    client,
		limiter:   rate.NewLimiter(limit, 1),
		userAgent: userAgent,
	}
}

// Do waits for the next request slot, then sends req bound to ctx. If ctx
// is cancelled while waiting, ctx.Err() is returned and nothing is sent.
func (p *Pacer) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, err
	}

	req = req.Clone(ctx)
	if p.userAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", p.userAgent)
	}
	return p.client.Do(req)
}
