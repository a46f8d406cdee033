package order

import (
	"fmt"
	"strings"

	"orderdesk/internal/pkg/errs"
)

// Status is the lifecycle stage of an order.
//
// State transitions:
//
//	PENDING ──> IN_PROGRESS ──> COMPLETED
//	   │                            ▲
//	   └────────────────────────────┘
//
// Every status may also be "moved" to itself, which changes nothing.
// COMPLETED is terminal.
type Status int

const (
	// Unknown catches uninitialised values; no transition is allowed from it.
	Unknown Status = iota
	Pending
	InProgress
	Completed
)

var statusNames = map[Status]string{
	Pending:    "PENDING",
	InProgress: "IN_PROGRESS",
	Completed:  "COMPLETED",
}

var statusLabels = map[Status]string{
	Pending:    "Pending",
	InProgress: "In Progress",
	Completed:  "Completed",
}

// Statuses lists the valid statuses in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, InProgress, Completed}
}

// ParseStatus accepts the wire names (PENDING, IN_PROGRESS, COMPLETED), case-insensitively.
func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for status, candidate := range statusNames {
		if candidate == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// Label returns the human readable name shown in option lists.
func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return "Unknown"
}

func (s Status) IsTerminal() bool {
	return s == Completed
}

// AllowedNextStatuses returns the statuses an order in s may be moved to,
// s itself included. It is the single source for both validation and the
// options offered to API clients.
func (s Status) AllowedNextStatuses() []Status {
	switch s {
	case Pending:
		return []Status{Pending, InProgress, Completed}
	case InProgress:
		return []Status{InProgress, Completed}
	case Completed:
		return []Status{Completed}
	default:
		return []Status{}
	}
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range s.AllowedNextStatuses() {
		if allowed == next {
			return true
		}
	}
	return false
}

// ValidateTransition returns an InvalidTransitionError when next is not reachable from s.
func (s Status) ValidateTransition(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if !s.CanTransitionTo(next) {
		return errs.NewInvalidTransitionError(s, next)
	}
	return nil
}

// MarshalText encodes the wire name.
func (s Status) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	status, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = status
	return nil
}
