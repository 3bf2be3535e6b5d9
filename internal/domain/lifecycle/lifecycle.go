// Package lifecycle holds process-wide lifecycle settings.
package lifecycle

import "time"

// DefaultTimeout bounds graceful start and stop of long-lived components.
const DefaultTimeout = 15 * time.Second
