// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ringstore

import (
	"errors"
	"testing"
)

func TestNewValidatesBounds(t *testing.T) {
	t.Parallel()
	if _, err := New(0, 10); err == nil {
		t.Error("New(0, 10): want error, got nil")
	}
	if _, err := New(-1, 10); err == nil {
		t.Error("New(-1, 10): want error, got nil")
	}
	if _, err := New(10, 5); err == nil {
		t.Error("New(10, 5): want error, got nil")
	}
}

func TestNewAllocatesMinSize(t *testing.T) {
	t.Parallel()
	s, err := New(16, 64)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Close()

	if got := s.Size(); got != 16 {
		t.Errorf("Size: got %d, want 16", got)
	}
	if got := s.Free(); got != 16 {
		t.Errorf("Free: got %d, want 16", got)
	}
	if got := s.Used(); got != 0 {
		t.Errorf("Used: got %d, want 0", got)
	}
	if !s.Empty() {
		t.Error("Empty: got false, want true")
	}
}

func TestNewAllocatorFailure(t *testing.T) {
	t.Parallel()
	allocErr := errors.New("budget exhausted")
	_, err := New(16, 64, WithAllocator(func(int) ([]byte, error) {
		return nil, allocErr
	}))
	if !errors.Is(err, allocErr) {
		t.Errorf("New with failing allocator: got %v, want wrapped %v", err, allocErr)
	}
}

func TestCloseThenUsePanics(t *testing.T) {
	t.Parallel()
	s, err := New(8, 8)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.Close()

	defer func() {
		if recover() == nil {
			t.Error("Used after Close: want panic, got none")
		}
	}()
	s.Used()
}

func TestDropMovesBytesToReplay(t *testing.T) {
	t.Parallel()
	s, err := New(32, 32)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Close()

	s.WriteString("abcdef")

	dropped, err := s.Drop(4)
	if err != nil {
		t.Fatalf("Drop: %v", err)
	}
	if dropped != 4 {
		t.Errorf("Drop(4): got %d, want 4", dropped)
	}
	if got := s.Used(); got != 2 {
		t.Errorf("Used after drop: got %d, want 2", got)
	}

	// Dropped bytes are replayable, not gone.
	history := make([]byte, 8)
	if n := s.Replay(history); string(history[:n]) != "abcd" {
		t.Errorf("Replay after drop: got %q, want %q", history[:n], "abcd")
	}
}

func TestDropClampsToUnread(t *testing.T) {
	t.Parallel()
	s, err := New(32, 32)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Close()

	s.WriteString("abc")
	dropped, err := s.Drop(100)
	if err != nil {
		t.Fatalf("Drop: %v", err)
	}
	if dropped != 3 {
		t.Errorf("Drop(100) with 3 unread: got %d, want 3", dropped)
	}
}

func TestDropNegative(t *testing.T) {
	t.Parallel()
	s, err := New(8, 8)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Close()

	if _, err := s.Drop(-1); !errors.Is(err, ErrNegativeCount) {
		t.Errorf("Drop(-1): got %v, want ErrNegativeCount", err)
	}
	// The failed call must not have touched anything.
	if got := s.Used(); got != 0 {
		t.Errorf("Used after failed Drop: got %d, want 0", got)
	}
}

func TestFlushClearsReplay(t *testing.T) {
	t.Parallel()
	s, err := New(32, 32)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Close()

	s.WriteString("history")
	buf := make([]byte, 7)
	s.Read(buf)

	s.Flush()

	if got := s.Replay(make([]byte, 16)); got != 0 {
		t.Errorf("Replay after Flush: got %d bytes, want 0", got)
	}
	if got := s.Used(); got != 0 {
		t.Errorf("Used after Flush: got %d, want 0", got)
	}
	if got := s.Size(); got != 32 {
		t.Errorf("Size after Flush: got %d, want 32 (capacity kept)", got)
	}
}

func TestFreeReportsNonGrowingHeadroom(t *testing.T) {
	t.Parallel()
	s, err := New(8, 64)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Close()

	s.WriteString("abcde")
	if got := s.Free(); got != 3 {
		t.Errorf("Free with 5 of 8 used: got %d, want 3", got)
	}

	// Replay bytes still occupy storage, so consuming data does not
	// free anything.
	s.Read(make([]byte, 5))
	if got := s.Free(); got != 3 {
		t.Errorf("Free after read: got %d, want 3 (replay still held)", got)
	}
}

func TestLockedStoreConcurrentUse(t *testing.T) {
	t.Parallel()
	s, err := New(64, 256, WithLocking())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			s.WriteString("0123456789")
		}
	}()
	buf := make([]byte, 32)
	for i := 0; i < 1000; i++ {
		s.Read(buf)
		s.Replay(buf)
	}
	<-done

	if got := s.Size(); got > 256 {
		t.Errorf("Size: got %d, want <= 256", got)
	}
}
