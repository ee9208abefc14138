package interceptors

import (
	"context"
	"slices"

	"github.com/abgdnv/catalog/pkg/config"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/retry"
	"github.com/sony/gobreaker/v2"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// transientCodes are retried and count against the circuit breaker.
// Everything else, NotFound and InvalidArgument included, is a valid answer from a healthy catalog.
var transientCodes = []codes.Code{codes.Unavailable, codes.ResourceExhausted, codes.Aborted}

// IsTransient reports whether err is worth retrying. Errors without a gRPC status are transient.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	st, ok := status.FromError(err)
	if !ok {
		return true
	}
	return slices.Contains(transientCodes, st.Code())
}

// NewRetryInterceptor retries transient failures with exponential backoff.
func NewRetryInterceptor(cfg config.RetryConfig) grpc.UnaryClientInterceptor {
	return retry.UnaryClientInterceptor(
		retry.WithCodes(transientCodes...),
		retry.WithMax(cfg.MaxAttempts),
		retry.WithBackoff(retry.BackoffExponential(cfg.InitialBackoff)),
	)
}

// UnaryCircuitBreakerInterceptor runs every call through cb. The breaker only sees the
// error; the reply is filled in by the invoker as usual.
func UnaryCircuitBreakerInterceptor(cb *gobreaker.CircuitBreaker[struct{}]) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		_, err := cb.Execute(func() (struct{}, error) {
			return struct{}{}, invoker(ctx, method, req, reply, cc, opts...)
		})
		return err
	}
}

// NewCircuitBreaker builds a named breaker from cfg and wraps it in an interceptor.
func NewCircuitBreaker(name string, cfg config.CircuitBreakerConfig) grpc.UnaryClientInterceptor {
	halfOpen := cfg.HalfOpenRequests
	if halfOpen == 0 {
		halfOpen = 1
	}
	breaker := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:         name,
		MaxRequests:  halfOpen,
		Timeout:      cfg.OpenTimeout,
		ReadyToTrip:  tripPolicy(cfg),
		IsSuccessful: func(err error) bool { return !IsTransient(err) },
	})
	return UnaryCircuitBreakerInterceptor(breaker)
}

// tripPolicy opens the breaker on more than cfg.ConsecutiveFailures failures in a row,
// or when the failure rate over more than that many calls exceeds cfg.ErrorRatePercent.
func tripPolicy(cfg config.CircuitBreakerConfig) func(gobreaker.Counts) bool {
	return func(counts gobreaker.Counts) bool {
		if counts.ConsecutiveFailures > cfg.ConsecutiveFailures {
			return true
		}
		if counts.Requests <= cfg.ConsecutiveFailures {
			return false
		}
		rate := float64(counts.TotalFailures) / float64(counts.Requests) * 100
		return rate > float64(cfg.ErrorRatePercent)
	}
}
