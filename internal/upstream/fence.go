package upstream

import (
	"sync"
	"sync/atomic"
)

// Fence is a per-resource request generation counter. A refresh calls
// Begin before issuing its request and Admit when the response lands;
// a response whose generation has been superseded is dropped instead
// of overwriting newer state.
type Fence struct {
	gen atomic.Uint64
}

// Begin opens a new generation, superseding all earlier ones.
func (f *Fence) Begin() uint64 {
	return f.gen.Add(1)
}

// Admit reports whether the generation is still the latest.
func (f *Fence) Admit(gen uint64) bool {
	return f.gen.Load() == gen
}

// FenceSet holds one independent Fence per resource key, so refreshes
// of unrelated resources never supersede each other. The zero value is
// ready to use.
type FenceSet struct {
	mu     sync.Mutex
	fences map[string]*Fence
}

// For returns the fence guarding key, creating it on first use.
func (s *FenceSet) For(key string) *Fence {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fences == nil {
		s.fences = make(map[string]*Fence)
	}
	f, ok := s.fences[key]
	if !ok {
		f = &Fence{}
		s.fences[key] = f
	}
	return f
}
