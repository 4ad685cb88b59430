package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventCommandStart  EventType = "command_start"
	EventCommandFinish EventType = "command_finish"
)

// CommandEvent describes a command around its execution.
type CommandEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	Type      EventType     `json:"type"`
	Command   Command       `json:"command"`
	Duration  time.Duration `json:"duration,omitempty"`
	Err       error         `json:"-"`
}

// LifecycleHooks defines callbacks for execution observability.
type LifecycleHooks struct {
	OnCommandStart  func(context.Context, *CommandEvent)
	OnCommandFinish func(context.Context, *CommandEvent)
}
