package main

import (
	"context"

	regexmark "github.com/alnah/go-regexmark"
)

// rendererPool adapts regexmark.RendererPool to the Pool interface.
type rendererPool struct {
	pool *regexmark.RendererPool
}

var _ Pool = (*rendererPool)(nil)

// newRendererPool creates a pool of n renderers built with opts.
func newRendererPool(n int, opts ...regexmark.Option) *rendererPool {
	return &rendererPool{pool: regexmark.NewRendererPool(n, opts...)}
}

// Acquire gets a renderer, creating it on first use.
func (p *rendererPool) Acquire(ctx context.Context) (CLIRenderer, error) {
	r, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Release returns a renderer obtained from Acquire.
func (p *rendererPool) Release(r CLIRenderer) {
	if rr, ok := r.(*regexmark.Renderer); ok {
		p.pool.Release(rr)
	}
}

// Size returns the pool capacity.
func (p *rendererPool) Size() int {
	return p.pool.Size()
}

// Close releases all browsers.
func (p *rendererPool) Close() error {
	return p.pool.Close()
}
