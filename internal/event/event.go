// Package event carries user-facing messages out of validation code to a
// reporting collaborator. Events are output only.
package event

import (
	"errors"
	"fmt"
	"strings"
)

// Type is the severity of an Event.
type Type string

const (
	Warn  Type = "WARN"
	Debug Type = "DEBUG"
	Error Type = "ERROR"
	Info  Type = "INFO"
)

var (
	// ErrEmptyMessage is returned by New for an empty message.
	ErrEmptyMessage = errors.New("event: empty message")

	// ErrUnknownType is returned for a type outside WARN, DEBUG, ERROR, INFO.
	ErrUnknownType = errors.New("event: unknown type")
)

// ParseType accepts a type name in any case.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%q: %w", s, ErrUnknownType)
	}
	return t, nil
}

// Valid reports whether t is a known type.
func (t Type) Valid() bool {
	switch t {
	case Warn, Debug, Error, Info:
		return true
	}
	return false
}

// Event is a severity-tagged message.
type Event struct {
	typ     Type
	message string
}

// New creates an Event.
func New(t Type, message string) (Event, error) {
	if !t.Valid() {
		return Event{}, fmt.Errorf("%q: %w", string(t), ErrUnknownType)
	}
	if message == "" {
		return Event{}, ErrEmptyMessage
	}
	return Event{typ: t, message: message}, nil
}

func newf(t Type, format string, args ...any) Event {
	e, err := New(t, fmt.Sprintf(format, args...))
	if err != nil {
		panic(err)
	}
	return e
}

// Warnf formats a WARN event. It panics if the formatted message is empty.
func Warnf(format string, args ...any) Event { return newf(Warn, format, args...) }

// Debugf formats a DEBUG event. It panics if the formatted message is empty.
func Debugf(format string, args ...any) Event { return newf(Debug, format, args...) }

// Errorf formats an ERROR event. It panics if the formatted message is empty.
func Errorf(format string, args ...any) Event { return newf(Error, format, args...) }

// Infof formats an INFO event. It panics if the formatted message is empty.
func Infof(format string, args ...any) Event { return newf(Info, format, args...) }

func (e Event) Type() Type {
	return e.typ
}

func (e Event) Message() string {
	return e.message
}

func (e Event) String() string {
	return fmt.Sprintf("%s: %s", e.typ, e.message)
}
