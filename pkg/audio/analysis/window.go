package analysis

import (
	"fmt"
	"math"
	"sync"
)

// WindowGenerator produces Hamming window coefficients. Generated windows are
// cached per length so repeated frame analyses of the same size reuse one
// coefficient slice. Cached slices are immutable after construction; the
// generator is safe for concurrent use.
type WindowGenerator struct {
	mu    sync.RWMutex
	cache map[int][]float64
}

// NewWindowGenerator creates a new window generator with an empty cache.
func NewWindowGenerator() *WindowGenerator {
	return &WindowGenerator{
		cache: make(map[int][]float64),
	}
}

// Hamming returns the Hamming window coefficients for length n:
//
//	w[i] = 0.54 - 0.46*cos(2*pi*i/(n-1))
//
// Coefficients are symmetric and bounded in [0, 1], with the endpoints at 0.08.
// A window shorter than 2 samples is undefined.
func (g *WindowGenerator) Hamming(n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: window length %d, need at least 2 samples", ErrInvalidInput, n)
	}

	g.mu.RLock()
	w, ok := g.cache[n]
	g.mu.RUnlock()
	if ok {
		return w, nil
	}

	w = make([]float64, n)
	for i := range w {
		w[i] = 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/float64(n-1))
	}

	g.mu.Lock()
	g.cache[n] = w
	g.mu.Unlock()

	return w, nil
}

// Apply returns a windowed copy of the frame. The input frame is not mutated.
func (g *WindowGenerator) Apply(frame []float64) ([]float64, error) {
	w, err := g.Hamming(len(frame))
	if err != nil {
		return nil, err
	}

	windowed := make([]float64, len(frame))
	for i, s := range frame {
		windowed[i] = s * w[i]
	}
	return windowed, nil
}

// CacheSize reports how many distinct window lengths are cached.
func (g *WindowGenerator) CacheSize() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.cache)
}
