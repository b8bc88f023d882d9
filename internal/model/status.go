package model

import "fmt"

// Status values for an order's recruitment lifecycle.
//
// Orders start active. The deadline sweep (or a manual close) moves them to
// closed; completed is set only by explicit external action and is never
// automated by the engine.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusClosed    Status = "closed"
)

// ParseStatus converts a raw string to a Status, returning an error for
// unknown values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusActive, StatusCompleted, StatusClosed:
		return st, nil
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

// AnalysisStatus values for the per-order analysis state machine.
//
// Valid status graph:
//
//	none ──► analyzing ──► completed
//	             │
//	             └──► none   (analysis failure)
//
// completed is terminal — a finished analysis is never redone.
type AnalysisStatus string

const (
	AnalysisNone      AnalysisStatus = "none"
	AnalysisRunning   AnalysisStatus = "analyzing"
	AnalysisCompleted AnalysisStatus = "completed"
)

// validAnalysisTransitions lists every allowed (from → to) pair.
var validAnalysisTransitions = map[AnalysisStatus][]AnalysisStatus{
	AnalysisNone:    {AnalysisRunning},
	AnalysisRunning: {AnalysisCompleted, AnalysisNone},
	// completed is terminal — no outgoing transitions
}

// ParseAnalysisStatus converts a raw string to an AnalysisStatus, returning
// an error for unknown values.
func ParseAnalysisStatus(s string) (AnalysisStatus, error) {
	st := AnalysisStatus(s)
	switch st {
	case AnalysisNone, AnalysisRunning, AnalysisCompleted:
		return st, nil
	}
	return "", fmt.Errorf("unknown analysis status %q", s)
}

// IsAnalysisTransitionAllowed returns true when moving from → to is permitted
// by the state machine.
func IsAnalysisTransitionAllowed(from, to AnalysisStatus) bool {
	allowed, ok := validAnalysisTransitions[from]
	if !ok {
		return false // terminal state — no outgoing transitions
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}
