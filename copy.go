// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ringstore

// Physical layout helpers. The retained bytes occupy
// data[start : start+occupied) modulo len(data): replayLen bytes of
// consumed history starting at start, then usedLen unread bytes
// starting at markPos.

func (s *Store) occupied() int {
	return s.replayLen + s.usedLen
}

// markPos is the physical index of the oldest unread byte.
func (s *Store) markPos() int {
	return (s.start + s.replayLen) % len(s.data)
}

// headPos is the physical index of the next write position.
func (s *Store) headPos() int {
	return (s.start + s.occupied()) % len(s.data)
}

// copyOut copies n bytes from the circular buffer starting at physical
// index pos into dst. The caller guarantees n <= len(dst) and that the
// n bytes are retained.
func (s *Store) copyOut(dst []byte, pos, n int) {
	first := min(n, len(s.data)-pos)
	copy(dst[:first], s.data[pos:pos+first])
	if n > first {
		copy(dst[first:n], s.data[:n-first])
	}
}

// copyIn copies p into the circular buffer starting at physical index
// pos. The caller guarantees len(p) <= len(data).
func (s *Store) copyIn(pos int, p []byte) {
	first := min(len(p), len(s.data)-pos)
	copy(s.data[pos:pos+first], p[:first])
	if len(p) > first {
		copy(s.data, p[first:])
	}
}

// grow enlarges the backing storage toward maxSize so that need more
// bytes fit without eviction, preferring to double. Growth is best
// effort: if the allocator fails, the store is left unchanged and the
// caller falls back to eviction. Existing contents are linearized into
// the new storage, so start is 0 afterward.
func (s *Store) grow(need int) {
	size := len(s.data)
	if size >= s.maxSize {
		return
	}
	target := size * 2
	if target < s.occupied()+need {
		target = s.occupied() + need
	}
	// Cap at the ceiling even when that is not enough; a partial grow
	// still reduces how much must be evicted.
	if target > s.maxSize {
		target = s.maxSize
	}
	if target <= size {
		return
	}
	fresh, err := s.alloc(target)
	if err != nil || len(fresh) < target {
		return
	}
	fresh = fresh[:target]
	s.copyOut(fresh, s.start, s.occupied())
	s.data = fresh
	s.start = 0
}

// evict discards the k oldest retained bytes to make room for a write,
// consuming replay history before unread data. The caller guarantees
// k <= occupied. Returns k.
func (s *Store) evict(k int) int {
	fromReplay := min(k, s.replayLen)
	s.start = (s.start + fromReplay) % len(s.data)
	s.replayLen -= fromReplay
	if rest := k - fromReplay; rest > 0 {
		s.start = (s.start + rest) % len(s.data)
		s.usedLen -= rest
	}
	return k
}
