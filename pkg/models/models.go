package models

import (
	"time"
)

// ThresholdDeclaration is a threshold as written in configuration, before validation
type ThresholdDeclaration struct {
	Name        string   `json:"name" mapstructure:"name"`
	Value       float64  `json:"value" mapstructure:"value"`
	Upper       *float64 `json:"upper,omitempty" mapstructure:"upper"`
	Operator    string   `json:"operator" mapstructure:"operator"`
	Probability bool     `json:"probability" mapstructure:"probability"`
	Dimension   string   `json:"dimension,omitempty" mapstructure:"dimension"`
}

// EventRecord is an evaluation event as handed to the reporting side
type EventRecord struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Summary counts reported events by type
type Summary struct {
	Warn  int `json:"warn"`
	Debug int `json:"debug"`
	Error int `json:"error"`
	Info  int `json:"info"`
}
