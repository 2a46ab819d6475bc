// Package duration defines the fixed delays and attempt counts used when
// talking to the API server.
package duration

import "time"

const (
	retryDelay = 5 * time.Second

	// RetryMax is the number of login attempts made while the server answers with
	// server errors.
	RetryMax = 5
)

// RetryDelay returns the duration to wait between two login attempts.
func RetryDelay() time.Duration {
	return retryDelay
}
