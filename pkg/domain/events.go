package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventDerivationStart EventType = "derivation_start"
	EventExpand          EventType = "expand"
	EventDerivationEnd   EventType = "derivation_end"
)

// DerivationEvent describes one observable moment of a derivation.
type DerivationEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`

	// Variable is the variable being expanded (expand events only).
	Variable Symbol `json:"variable,omitempty"`

	// Step is the expansion step count so far.
	Step int `json:"step"`

	// Length is the terminal count of the result (end events only).
	Length int `json:"length,omitempty"`

	// TimedOut marks an end event for a derivation that exhausted its
	// step budget.
	TimedOut bool `json:"timed_out,omitempty"`
}

// LifecycleHooks defines callbacks for derivation observability. Any field
// may be nil; nil hooks are skipped.
type LifecycleHooks struct {
	OnDerivationStart func(context.Context, *DerivationEvent)
	OnExpand          func(context.Context, *DerivationEvent)
	OnDerivationEnd   func(context.Context, *DerivationEvent)
}
