// Package lifecycle holds values shared by components that hook into the
// application start and stop sequence.
package lifecycle

import "time"

// DefaultTimeout bounds start-up checks and graceful shutdown of a single component.
const DefaultTimeout = 10 * time.Second
