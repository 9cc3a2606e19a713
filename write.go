// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ringstore

// Write appends p to the store. The entire slice is always accepted:
// if p does not fit in the free space the store first grows toward its
// ceiling, and only when growth is exhausted or unavailable does it
// evict the oldest retained bytes — replay history first, then unread
// data. Returns len(p) and the number of bytes evicted to make room.
func (s *Store) Write(p []byte) (written, dropped int) {
	s.lock()
	defer s.unlock()
	s.ensureOpen()
	return s.write(p)
}

// WriteString appends str via the same path as [Store.Write].
func (s *Store) WriteString(str string) (written, dropped int) {
	s.lock()
	defer s.unlock()
	s.ensureOpen()
	return s.write([]byte(str))
}

func (s *Store) write(p []byte) (written, dropped int) {
	n := len(p)
	if n == 0 {
		return 0, 0
	}
	if n > len(s.data)-s.occupied() {
		s.grow(n)
	}
	size := len(s.data)
	if n >= size {
		// The request alone fills the buffer: every retained byte is
		// evicted and only the trailing size bytes of p survive. The
		// overwritten prefix of p counts as dropped too.
		dropped = s.occupied() + (n - size)
		copy(s.data, p[n-size:])
		s.start = 0
		s.replayLen = 0
		s.usedLen = size
		return n, dropped
	}
	if free := size - s.occupied(); n > free {
		dropped = s.evict(n - free)
	}
	s.copyIn(s.headPos(), p)
	s.usedLen += n
	return n, dropped
}
