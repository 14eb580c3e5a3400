// Package lifecycle holds shared constants for application startup and
// shutdown coordination.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown steps such as
// server drain and database connectivity checks.
const DefaultTimeout = 10 * time.Second
