package app

import (
	"time"

	"github.com/abhisek/mentor/internal/tutor"
)

// sessionOpenedMsg is sent when the session has produced its greeting.
type sessionOpenedMsg struct {
	Resp *tutor.Response
}

// tutorReplyMsg is sent when the orchestrator has handled one input.
type tutorReplyMsg struct {
	Resp *tutor.Response
}

// spinnerTickMsg animates the thinking indicator while a model
// call is in flight.
type spinnerTickMsg time.Time
