// Package ident issues identifiers for referenced nodes.
package ident

import (
	"strconv"
	"sync"
)

// Allocator issues identifiers. Identifiers are never reused, even if the
// node they were assigned to is later discarded.
type Allocator interface {
	NextID() string
}

// sequence is a monotonic allocator. Guarded so concurrent callers cannot
// observe the same identifier twice.
type sequence struct {
	mu     sync.Mutex
	prefix string
	next   uint64
}

// NewSequence returns an allocator issuing "<prefix>-<n>" with n starting
// at 1.
func NewSequence(prefix string) Allocator {
	return &sequence{prefix: prefix, next: 1}
}

func (s *sequence) NextID() string {
	s.mu.Lock()
	id := s.next
	s.next++
	s.mu.Unlock()
	return s.prefix + "-" + strconv.FormatUint(id, 10)
}

var global = NewSequence("aria")

// Default returns the process-wide allocator. Tests wanting deterministic
// identifiers should build their own sequence instead.
func Default() Allocator {
	return global
}
