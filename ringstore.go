// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ringstore

import (
	"fmt"
	"sync"
)

// Store is a circular byte buffer that grows on demand up to a fixed
// ceiling and, once full, evicts its oldest bytes instead of rejecting
// writes. Consumed bytes remain available for history replay until
// eviction or [Store.Flush] reclaims them.
//
// The zero value is not usable; construct with [New]. Methods are not
// safe for concurrent use unless the store was created with
// [WithLocking].
type Store struct {
	mu    *sync.Mutex // nil when locking is disabled
	alloc func(int) ([]byte, error)

	minSize int
	maxSize int

	// data is the backing storage, treated as circular. start is the
	// physical index of the oldest retained byte. replayLen bytes of
	// consumed history precede usedLen bytes of unread data; the rest
	// of the buffer is free.
	data      []byte
	start     int
	replayLen int
	usedLen   int

	closed bool
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithLocking makes every operation on the store a single critical
// section guarded by a per-instance mutex, so the store is safe for
// concurrent use. Without it, callers must serialize externally.
func WithLocking() Option {
	return func(s *Store) {
		s.mu = new(sync.Mutex)
	}
}

// WithAllocator replaces the allocator used for the initial buffer and
// for capacity growth. The allocator carries the out-of-memory policy:
// returning an error makes New fail and makes a growing write fall back
// to evicting old data, while an allocator that panics or exits aborts
// instead. The default allocator wraps make and never fails.
//
// The allocator must not call back into the same store.
func WithAllocator(alloc func(size int) ([]byte, error)) Option {
	return func(s *Store) {
		s.alloc = alloc
	}
}

func defaultAlloc(size int) ([]byte, error) {
	return make([]byte, size), nil
}

// New creates a store that holds minSize bytes immediately and may grow
// up to maxSize bytes before evicting old data. Requires
// 0 < minSize <= maxSize; set minSize == maxSize to disable growth.
//
// A Store holds its backing storage until [Store.Close]; abandoning a
// store without closing it keeps the storage reachable for as long as
// the handle is.
func New(minSize, maxSize int, opts ...Option) (*Store, error) {
	if minSize <= 0 {
		return nil, fmt.Errorf("ringstore: minimum size must be positive, got %d", minSize)
	}
	if maxSize < minSize {
		return nil, fmt.Errorf("ringstore: maximum size %d below minimum size %d", maxSize, minSize)
	}
	s := &Store{
		alloc:   defaultAlloc,
		minSize: minSize,
		maxSize: maxSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	data, err := s.alloc(minSize)
	if err != nil {
		return nil, fmt.Errorf("ringstore: allocate %d bytes: %w", minSize, err)
	}
	if len(data) < minSize {
		return nil, fmt.Errorf("ringstore: allocator returned %d bytes, need %d", len(data), minSize)
	}
	s.data = data[:minSize]
	return s, nil
}

// Close releases the backing storage. Any use of the store after Close
// panics.
func (s *Store) Close() {
	s.lock()
	defer s.unlock()
	s.data = nil
	s.start = 0
	s.replayLen = 0
	s.usedLen = 0
	s.closed = true
}

// Empty reports whether the store holds no unread bytes. Replay history
// does not count as unread.
func (s *Store) Empty() bool {
	s.lock()
	defer s.unlock()
	s.ensureOpen()
	return s.usedLen == 0
}

// Size returns the currently allocated capacity in bytes.
func (s *Store) Size() int {
	s.lock()
	defer s.unlock()
	s.ensureOpen()
	return len(s.data)
}

// Free returns the number of bytes writable before eviction would
// occur, assuming the store cannot grow further. It is the guaranteed
// headroom: growth may make the real headroom larger, never smaller.
func (s *Store) Free() int {
	s.lock()
	defer s.unlock()
	s.ensureOpen()
	return len(s.data) - s.occupied()
}

// Used returns the number of unread bytes available to Read, Peek, and
// Drop.
func (s *Store) Used() int {
	s.lock()
	defer s.unlock()
	s.ensureOpen()
	return s.usedLen
}

// Flush discards all retained data, replay history included. The
// allocated capacity is kept.
func (s *Store) Flush() {
	s.lock()
	defer s.unlock()
	s.ensureOpen()
	s.start = 0
	s.replayLen = 0
	s.usedLen = 0
}

// Drop consumes up to n unread bytes without copying them out. The
// dropped bytes move into the replay region, exactly as if they had
// been read. Returns the number of bytes dropped; dropping from an
// empty store is not an error.
func (s *Store) Drop(n int) (int, error) {
	if n < 0 {
		return 0, ErrNegativeCount
	}
	s.lock()
	defer s.unlock()
	s.ensureOpen()
	n = min(n, s.usedLen)
	s.replayLen += n
	s.usedLen -= n
	return n, nil
}

func (s *Store) lock() {
	if s.mu != nil {
		s.mu.Lock()
	}
}

func (s *Store) unlock() {
	if s.mu != nil {
		s.mu.Unlock()
	}
}

func (s *Store) ensureOpen() {
	if s.closed {
		panic("ringstore: use of closed Store")
	}
}
