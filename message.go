// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package srp

// Severity classifies a message raised through a Context's
// MessageCallback.
type Severity int

// Severities.
const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
)

func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "Low"
	case SeverityMedium:
		return "Medium"
	case SeverityHigh:
		return "High"
	default:
		return "Severity(?)"
	}
}

// MessageType classifies the nature of a message.
type MessageType int

// Message types.
const (
	TypeError MessageType = iota
	TypeWarning
	TypeInfo
)

func (t MessageType) String() string {
	switch t {
	case TypeError:
		return "Error"
	case TypeWarning:
		return "Warning"
	case TypeInfo:
		return "Info"
	default:
		return "MessageType(?)"
	}
}

// MessageCallback receives diagnostics raised by the pipeline: domain
// errors, range errors, warnings and resource failures (see spec.md
// §7). It never carries a way to abort the current operation; the
// pipeline has already decided the outcome (return a sentinel, drop
// excess vertices, abort the draw) by the time the callback runs.
type MessageCallback func(typ MessageType, severity Severity, sourceName, text string, userParam any)

// defaultMessageCallback discards every message. Context installs it
// so a Context is usable without the caller wiring a callback first.
func defaultMessageCallback(MessageType, Severity, string, string, any) {}
