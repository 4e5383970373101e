package provider

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"github.com/batchwatch/batchwatch/pkg/types"
)

// breakerSettings builds circuit breaker settings shared by all wrapped
// providers. ErrNotFound is a normal answer from a healthy backend and must
// never trip the breaker.
func breakerSettings(name string, logger *slog.Logger) gobreaker.Settings {
	return gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				"breaker", name,
				"from", from.String(),
				"to", to.String())
		},
	}
}

// BreakerBatchProvider wraps a BatchProvider with a circuit breaker so a
// failing backend stops being hammered while the rest of a run proceeds.
type BreakerBatchProvider struct {
	inner BatchProvider
	cb    *gobreaker.CircuitBreaker
}

// NewBreakerBatchProvider wraps inner with a breaker named "batches".
func NewBreakerBatchProvider(inner BatchProvider, logger *slog.Logger) *BreakerBatchProvider {
	return &BreakerBatchProvider{
		inner: inner,
		cb:    gobreaker.NewCircuitBreaker(breakerSettings("batches", logger)),
	}
}

func (p *BreakerBatchProvider) ListSources(ctx context.Context, date string) ([]string, error) {
	out, err := p.cb.Execute(func() (interface{}, error) {
		return p.inner.ListSources(ctx, date)
	})
	if err != nil {
		return nil, err
	}
	return out.([]string), nil
}

func (p *BreakerBatchProvider) GetBatch(ctx context.Context, sourceID, date string) ([]types.FileRecord, error) {
	out, err := p.cb.Execute(func() (interface{}, error) {
		return p.inner.GetBatch(ctx, sourceID, date)
	})
	if err != nil {
		return nil, err
	}
	return out.([]types.FileRecord), nil
}

// BreakerProfileProvider wraps a ProfileProvider with a circuit breaker.
type BreakerProfileProvider struct {
	inner ProfileProvider
	cb    *gobreaker.CircuitBreaker
}

// NewBreakerProfileProvider wraps inner with a breaker named "profiles".
func NewBreakerProfileProvider(inner ProfileProvider, logger *slog.Logger) *BreakerProfileProvider {
	return &BreakerProfileProvider{
		inner: inner,
		cb:    gobreaker.NewCircuitBreaker(breakerSettings("profiles", logger)),
	}
}

func (p *BreakerProfileProvider) GetProfile(ctx context.Context, sourceID string) (string, error) {
	out, err := p.cb.Execute(func() (interface{}, error) {
		return p.inner.GetProfile(ctx, sourceID)
	})
	if err != nil {
		return "", err
	}
	return out.(string), nil
}
