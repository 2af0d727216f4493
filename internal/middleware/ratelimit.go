package middleware

import (
	"context"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"
	"golang.org/x/time/rate"
)

// RateLimitInterceptor returns a Connect interceptor that admits calls to
// the listed procedures at rps per second with the given burst, shared by
// all callers. Other procedures pass through.
func RateLimitInterceptor(rps float64, burst int, procedures ...string) connect.UnaryInterceptorFunc {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	limited := make(map[string]bool, len(procedures))
	for _, p := range procedures {
		limited[p] = true
	}

	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			procedure := req.Spec().Procedure
			if limited[procedure] && !limiter.Allow() {
				slog.Warn("Rate limit exceeded", "procedure", procedure, "request_id", GetRequestID(ctx))
				return nil, connect.NewError(connect.CodeResourceExhausted, fmt.Errorf("too many requests, retry later"))
			}
			return next(ctx, req)
		}
	}
}
