// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package ringstore implements a growable circular byte buffer with
// replay history, built for session capture and line-oriented I/O
// multiplexing.
//
// A [Store] holds bytes in three contiguous logical regions: replay
// (already consumed but retained for history), unread (written but not
// yet consumed), and free. Writes never fail for lack of space: the
// buffer first grows toward a configured ceiling, and once the ceiling
// is reached it evicts the oldest retained bytes — replay history
// first, then unread data — reporting the evicted count to the caller.
// Consumed bytes are not discarded; they migrate into the replay region
// so a newly attached observer can receive recent output via [Store.Replay]
// without the producer having buffered it specially.
//
// [Store.ReadLine] and [Store.PeekLine] provide newline-delimited reads
// with an explicit truncation contract: a line longer than the
// destination is truncated and the remainder discarded, signalled by a
// return value at least as large as the destination.
//
// [Store.PeekToFD], [Store.ReadToFD], [Store.ReplayToFD], and
// [Store.WriteFromFD] move bytes directly between the buffer and a raw
// file descriptor. Short transfers are reconciled exactly: only bytes
// actually transferred are consumed or evicted, interrupted calls
// (EINTR) are retried once, and any other descriptor error leaves the
// buffer untouched and surfaces wrapped so errors.Is can distinguish
// transient conditions.
//
// A Store is not safe for concurrent use unless created with
// [WithLocking], which wraps every operation in a per-instance mutex.
// [WithAllocator] injects the memory policy: the default allocator
// never fails, while a budget-enforcing allocator may return an error
// (creation fails; a growing write falls back to eviction instead) or
// abort outright.
package ringstore
