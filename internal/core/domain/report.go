package domain

import "time"

// TypeStatus is the outcome of processing one type.
type TypeStatus string

const (
	// StatusTransformed indicates at least one plugin rewrote the type.
	StatusTransformed TypeStatus = "transformed"
	// StatusSkipped indicates no plugin matched the type. Names without a
	// class file fall in here too; the session answers them as non-matches.
	StatusSkipped TypeStatus = "skipped"
	// StatusFailed indicates the transformation errored.
	StatusFailed TypeStatus = "failed"
)

// TypeReport records the outcome for a single type.
type TypeReport struct {
	Name    string     `yaml:"name"`
	Status  TypeStatus `yaml:"status"`
	Plugins []string   `yaml:"plugins,omitempty"`
	Error   string     `yaml:"error,omitempty"`
}

// Report summarizes one instrumentation run.
type Report struct {
	TargetVersion string       `yaml:"target_version"`
	Plugins       []string     `yaml:"plugins"`
	Started       time.Time    `yaml:"started"`
	Duration      string       `yaml:"duration"`
	Types         []TypeReport `yaml:"types"`
}
