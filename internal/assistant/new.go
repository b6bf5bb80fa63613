package assistant

import (
	"context"
	"errors"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"flowx/pkg/llmprovider"
	"flowx/pkg/log"
)

// ErrUnavailable marks a collaborator call that produced no usable answer.
var ErrUnavailable = errors.New("assistant: collaborator unavailable")

const (
	DefaultCallTimeout = 15 * time.Second
	DefaultCacheSize   = 128
	DefaultCacheTTL    = 30 * time.Minute
)

// Options tunes call bounds and caching. Zero values take the defaults.
type Options struct {
	CallTimeout time.Duration
	CacheSize   int
	CacheTTL    time.Duration
}

type implAssistant struct {
	l       log.Logger
	gen     Generator
	timeout time.Duration

	suggestions *expirable.LRU[string, []string]
	feedback    *expirable.LRU[string, string]
}

// New creates an Assistant. gen may be nil, in which case every call
// answers with its fallback.
func New(l log.Logger, gen Generator, opt Options) Assistant {
	if opt.CallTimeout <= 0 {
		opt.CallTimeout = DefaultCallTimeout
	}
	if opt.CacheSize <= 0 {
		opt.CacheSize = DefaultCacheSize
	}
	if opt.CacheTTL <= 0 {
		opt.CacheTTL = DefaultCacheTTL
	}
	return &implAssistant{
		l:           l,
		gen:         gen,
		timeout:     opt.CallTimeout,
		suggestions: expirable.NewLRU[string, []string](opt.CacheSize, nil, opt.CacheTTL),
		feedback:    expirable.NewLRU[string, string](opt.CacheSize, nil, opt.CacheTTL),
	}
}

// generate runs one bounded call and returns the raw model text.
func (a *implAssistant) generate(ctx context.Context, prompt string, asJSON bool) (string, error) {
	if a.gen == nil {
		return "", ErrUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	resp, err := a.gen.GenerateContent(ctx, &llmprovider.Request{
		Messages: llmprovider.UserText(prompt),
		JSON:     asJSON,
	})
	if err != nil {
		return "", errors.Join(ErrUnavailable, err)
	}
	return resp.Text(), nil
}
