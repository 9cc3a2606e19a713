// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ringstore

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Descriptor-mediated transfers. These mirror the in-memory operations
// with a raw file descriptor as source or destination. A negative n
// means "as much as is currently available". Short transfers are
// reconciled exactly: only the bytes the descriptor actually moved are
// consumed, evicted, or copied. Interrupted calls are retried once;
// every other descriptor error leaves the store untouched and is
// surfaced wrapped, so errors.Is against unix errno values still works.

// PeekToFD writes up to n unread bytes to fd without consuming them.
// Returns the number of bytes the descriptor accepted.
func (s *Store) PeekToFD(fd, n int) (int, error) {
	s.lock()
	defer s.unlock()
	s.ensureOpen()
	if n < 0 || n > s.usedLen {
		n = s.usedLen
	}
	if n == 0 {
		return 0, nil
	}
	return s.vecToFD(fd, s.markPos(), n)
}

// ReadToFD writes up to n unread bytes to fd and consumes exactly the
// bytes the descriptor accepted; they move into the replay region.
// Returns the number of bytes transferred.
func (s *Store) ReadToFD(fd, n int) (int, error) {
	s.lock()
	defer s.unlock()
	s.ensureOpen()
	if n < 0 || n > s.usedLen {
		n = s.usedLen
	}
	if n == 0 {
		return 0, nil
	}
	wrote, err := s.vecToFD(fd, s.markPos(), n)
	if err != nil {
		return 0, err
	}
	s.replayLen += wrote
	s.usedLen -= wrote
	return wrote, nil
}

// ReplayToFD writes up to n bytes of previously consumed history to fd,
// oldest first, without consuming anything. Returns the number of bytes
// transferred.
func (s *Store) ReplayToFD(fd, n int) (int, error) {
	s.lock()
	defer s.unlock()
	s.ensureOpen()
	if n < 0 || n > s.replayLen {
		n = s.replayLen
	}
	if n == 0 {
		return 0, nil
	}
	return s.vecToFD(fd, s.start, n)
}

// WriteFromFD reads up to n bytes from fd and appends them via the same
// path as [Store.Write], so growth and eviction apply only to bytes the
// descriptor actually supplied. A negative n requests the current free
// space, which never evicts. Returns the bytes written, the bytes
// evicted to make room, and any descriptor error. A 0, 0, nil return
// for a positive request means the descriptor reached end of input.
func (s *Store) WriteFromFD(fd, n int) (written, dropped int, err error) {
	s.lock()
	defer s.unlock()
	s.ensureOpen()
	if n < 0 {
		n = len(s.data) - s.occupied()
	}
	if n == 0 {
		return 0, 0, nil
	}
	// Stage through a scratch buffer so cursors move only for bytes
	// that actually arrived. The configured allocator supplies it so a
	// budget-enforcing policy applies here too.
	scratch, err := s.alloc(n)
	if err != nil {
		return 0, 0, fmt.Errorf("ringstore: allocate %d byte staging buffer: %w", n, err)
	}
	if len(scratch) > n {
		scratch = scratch[:n]
	}
	got, err := unix.Read(fd, scratch)
	if errors.Is(err, unix.EINTR) {
		got, err = unix.Read(fd, scratch)
	}
	if err != nil {
		return 0, 0, fmt.Errorf("ringstore: read from fd %d: %w", fd, err)
	}
	if got == 0 {
		return 0, 0, nil
	}
	written, dropped = s.write(scratch[:got])
	return written, dropped, nil
}

// vecToFD writes n retained bytes starting at physical index pos to fd
// in a single writev, using two iovecs when the region wraps.
func (s *Store) vecToFD(fd, pos, n int) (int, error) {
	first := min(n, len(s.data)-pos)
	iov := [][]byte{s.data[pos : pos+first]}
	if n > first {
		iov = append(iov, s.data[:n-first])
	}
	wrote, err := unix.Writev(fd, iov)
	if errors.Is(err, unix.EINTR) {
		wrote, err = unix.Writev(fd, iov)
	}
	if err != nil {
		return 0, fmt.Errorf("ringstore: write to fd %d: %w", fd, err)
	}
	return wrote, nil
}
