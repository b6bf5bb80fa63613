package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"flowx/pkg/log"
)

// Manager orchestrates provider selection, fallback, and retry logic
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
	limiter   *rate.Limiter
	breakers  map[string]*gobreaker.CircuitBreaker[*Response]
}

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // Global timeout for entire fallback chain

	// RequestsPerMinute caps calls across all providers. Zero disables the limit.
	RequestsPerMinute int
	Burst             int

	Breaker BreakerConfig
}

// BreakerConfig configures the per-provider circuit breaker.
type BreakerConfig struct {
	Enabled          bool
	FailureThreshold uint32        // consecutive failures before opening
	MaxRequests      uint32        // probes allowed while half-open
	Interval         time.Duration // closed-state count reset period
	Timeout          time.Duration // open-state duration before half-open
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{}
	}
	if config.RetryAttempts <= 0 {
		config.RetryAttempts = 1
	}

	m := &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
		breakers:  make(map[string]*gobreaker.CircuitBreaker[*Response]),
	}

	if config.RequestsPerMinute > 0 {
		burst := config.Burst
		if burst <= 0 {
			burst = 1
		}
		m.limiter = rate.NewLimiter(rate.Limit(float64(config.RequestsPerMinute)/60.0), burst)
	}

	if config.Breaker.Enabled {
		for _, p := range providers {
			m.breakers[p.Name()] = m.newBreaker(p.Name())
		}
	}
	return m
}

func (m *Manager) newBreaker(name string) *gobreaker.CircuitBreaker[*Response] {
	threshold := m.config.Breaker.FailureThreshold
	if threshold == 0 {
		threshold = 3
	}
	return gobreaker.NewCircuitBreaker[*Response](gobreaker.Settings{
		Name:        name,
		MaxRequests: m.config.Breaker.MaxRequests,
		Interval:    m.config.Breaker.Interval,
		Timeout:     m.config.Breaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			m.logger.Warnf(context.Background(), "llmprovider.Manager: circuit breaker %s changed %s -> %s",
				name, from.String(), to.String())
		},
	})
}

// Providers returns the provider names in priority order.
func (m *Manager) Providers() []string {
	names := make([]string, len(m.providers))
	for i, p := range m.providers {
		names[i] = p.Name()
	}
	return names
}

// GenerateContent iterates through providers in priority order with fallback logic
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	if m.limiter != nil && !m.limiter.Allow() {
		return nil, ErrProviderRateLimited
	}

	var cancel context.CancelFunc
	if m.config.MaxTotalTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	for _, provider := range m.providers {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("global timeout exceeded after trying %d provider(s): %w",
				len(m.providers), ctx.Err())
		default:
		}

		resp, err := m.call(ctx, provider, req)
		if err == nil {
			m.logSuccess(ctx, provider, resp)
			return resp, nil
		}

		m.logFailure(ctx, provider, err)
		lastErr = &ProviderError{Provider: provider.Name(), Err: err}

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

// call runs generateWithRetry behind the provider's breaker, if any.
func (m *Manager) call(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	breaker, ok := m.breakers[provider.Name()]
	if !ok {
		return m.generateWithRetry(ctx, provider, req)
	}

	resp, err := breaker.Execute(func() (*Response, error) {
		return m.generateWithRetry(ctx, provider, req)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, ErrCircuitOpen
	}
	return resp, err
}

// generateWithRetry implements retry mechanism with linear backoff
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	var lastErr error

	for attempt := 0; attempt < m.config.RetryAttempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * m.config.RetryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err := provider.GenerateContent(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
	}

	return nil, lastErr
}

func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response) {
	var in, out int
	if resp.Usage != nil {
		in, out = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	m.logger.Infof(ctx, "llmprovider.GenerateContent: ok provider=%s model=%s input_tokens=%d output_tokens=%d",
		provider.Name(), provider.Model(), in, out)
}

func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warnf(ctx, "llmprovider.GenerateContent: failed provider=%s model=%s: %v",
		provider.Name(), provider.Model(), err)
}
