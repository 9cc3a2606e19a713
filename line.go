// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ringstore

import "bytes"

// ReadLine copies the next newline-terminated line of unread data into
// dst, newline included, followed by a NUL terminator. dst must hold at
// least the terminator, so len(dst) >= 1.
//
// Returns the length of the line excluding the terminator. A return
// value >= len(dst) signals truncation: dst received the first
// len(dst)-1 bytes plus the terminator, and the rest of the line was
// consumed and discarded, not left for a later call. Returns 0 if the
// unread data contains no newline; nothing is consumed or written in
// that case.
func (s *Store) ReadLine(dst []byte) (int, error) {
	if len(dst) < 1 {
		return 0, ErrLineBufferTooSmall
	}
	s.lock()
	defer s.unlock()
	s.ensureOpen()
	lineLen := s.scanLine()
	if lineLen == 0 {
		return 0, nil
	}
	n := min(lineLen, len(dst)-1)
	s.copyOut(dst, s.markPos(), n)
	dst[n] = 0
	// The whole line is consumed even when truncated.
	s.replayLen += lineLen
	s.usedLen -= lineLen
	return lineLen, nil
}

// PeekLine is [Store.ReadLine] without consumption: the line (or its
// truncated prefix) is copied out, but the unread region is unchanged.
func (s *Store) PeekLine(dst []byte) (int, error) {
	if len(dst) < 1 {
		return 0, ErrLineBufferTooSmall
	}
	s.lock()
	defer s.unlock()
	s.ensureOpen()
	lineLen := s.scanLine()
	if lineLen == 0 {
		return 0, nil
	}
	n := min(lineLen, len(dst)-1)
	s.copyOut(dst, s.markPos(), n)
	dst[n] = 0
	return lineLen, nil
}

// scanLine returns the length, newline included, of the first
// newline-terminated line in the unread region, or 0 if the unread
// bytes contain no newline.
func (s *Store) scanLine() int {
	pos := s.markPos()
	first := min(s.usedLen, len(s.data)-pos)
	if i := bytes.IndexByte(s.data[pos:pos+first], '\n'); i >= 0 {
		return i + 1
	}
	if rest := s.usedLen - first; rest > 0 {
		if i := bytes.IndexByte(s.data[:rest], '\n'); i >= 0 {
			return first + i + 1
		}
	}
	return 0
}
