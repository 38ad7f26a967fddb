// Package reqctx is the single home for request-scoped data: request
// metadata set by the HTTP middleware for every request, and auth claims set
// only when a valid token was presented. Context keys are unexported;
// access goes through the typed helpers here.
package reqctx

import (
	"context"
	"time"
)

type ctxKey int

const (
	keyRequestMeta ctxKey = iota
	keyClaims
)

// RequestMeta holds per-request metadata set by the request-ID middleware.
type RequestMeta struct {
	// RequestID is a UUID v4 string, also echoed in the X-Request-Id header.
	RequestID string

	// ClientIP may come from X-Forwarded-For or the direct connection.
	ClientIP string

	UserAgent   string
	RequestedAt time.Time
}

// WithRequestMeta stores RequestMeta in the context.
func WithRequestMeta(ctx context.Context, meta *RequestMeta) context.Context {
	return context.WithValue(ctx, keyRequestMeta, meta)
}

// RequestMetaFromContext retrieves RequestMeta, reporting whether it was set.
func RequestMetaFromContext(ctx context.Context) (*RequestMeta, bool) {
	meta, ok := ctx.Value(keyRequestMeta).(*RequestMeta)
	return meta, ok && meta != nil
}

// RequestIDFromContext returns the request ID, or "" outside a request.
func RequestIDFromContext(ctx context.Context) string {
	meta, ok := RequestMetaFromContext(ctx)
	if !ok {
		return ""
	}
	return meta.RequestID
}
