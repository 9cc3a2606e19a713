// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ringstore

// Peek copies up to len(dst) unread bytes into dst in write order
// without consuming them. Returns the number of bytes copied; 0 means
// the store holds no unread bytes.
func (s *Store) Peek(dst []byte) int {
	s.lock()
	defer s.unlock()
	s.ensureOpen()
	n := min(len(dst), s.usedLen)
	s.copyOut(dst, s.markPos(), n)
	return n
}

// Read copies up to len(dst) unread bytes into dst in write order and
// consumes them. Consumed bytes move into the replay region; they stay
// retrievable via [Store.Replay] until evicted or flushed. Returns the
// number of bytes copied; 0 means the store holds no unread bytes.
func (s *Store) Read(dst []byte) int {
	s.lock()
	defer s.unlock()
	s.ensureOpen()
	n := min(len(dst), s.usedLen)
	s.copyOut(dst, s.markPos(), n)
	s.replayLen += n
	s.usedLen -= n
	return n
}

// Replay copies up to len(dst) bytes of previously consumed data into
// dst, oldest first. Replay does not consume anything: the same history
// can be replayed repeatedly until a write evicts it or Flush clears
// it. Returns the number of bytes copied.
func (s *Store) Replay(dst []byte) int {
	s.lock()
	defer s.unlock()
	s.ensureOpen()
	n := min(len(dst), s.replayLen)
	s.copyOut(dst, s.start, n)
	return n
}
