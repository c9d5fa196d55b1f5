package ui

import (
	"time"
)

// tickMsg is sent on a timer for animations
type tickMsg time.Time
