// Package timeouts provides centralized timeout values for handler operations.
//
// These timeouts are used with context.WithTimeout around store operations
// in HTTP handlers. Centralized values keep handler behavior consistent.
//
// Guidelines for choosing a timeout:
//   - Ping: health checks and connectivity verification
//   - Short: single-collection reads or lookups
//   - Medium: list queries, writes, operations touching multiple collections
package timeouts

import "time"

const (
	ping   = 2 * time.Second
	short  = 5 * time.Second
	medium = 10 * time.Second
)

// Ping returns the timeout for health checks.
func Ping() time.Duration { return ping }

// Short returns the timeout for simple single-collection operations.
func Short() time.Duration { return short }

// Medium returns the timeout for list queries and multi-collection writes.
func Medium() time.Duration { return medium }
