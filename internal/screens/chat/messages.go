package chat

import (
	"time"

	"skillscout/internal/interview"
)

// stepDoneMsg is sent when the engine finishes processing one turn.
type stepDoneMsg struct {
	Events []interview.Event
}

// spinnerTickMsg animates the waiting indicator.
type spinnerTickMsg time.Time
