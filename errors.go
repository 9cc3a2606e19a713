// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ringstore

import "errors"

var (
	// ErrNegativeCount is returned by Drop when asked to drop a
	// negative number of bytes.
	ErrNegativeCount = errors.New("ringstore: negative count")

	// ErrLineBufferTooSmall is returned by ReadLine and PeekLine when
	// the destination cannot hold even a line terminator.
	ErrLineBufferTooSmall = errors.New("ringstore: destination too small for a line terminator")
)
