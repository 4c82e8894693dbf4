package app

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when a stage transition skips or repeats a stage.
var ErrInvalidTransition = errors.New("catcard: invalid stage transition")

// Stage is a step of the card pipeline. Stages only move forward, one at a time.
type Stage int

const (
	StageStart Stage = iota
	StageURLBuilt
	StageURLsDerived
	StageImagesFetched
	StageComposited
	StageSaved
)

// String returns a human-readable representation of the stage.
func (s Stage) String() string {
	switch s {
	case StageStart:
		return "Start"
	case StageURLBuilt:
		return "URLBuilt"
	case StageURLsDerived:
		return "URLsDerived"
	case StageImagesFetched:
		return "ImagesFetched"
	case StageComposited:
		return "Composited"
	case StageSaved:
		return "Saved"
	default:
		return "Unknown"
	}
}

// action names the work that produces s.
func (s Stage) action() string {
	switch s {
	case StageStart:
		return "read input"
	case StageURLBuilt:
		return "build base image url"
	case StageURLsDerived:
		return "derive caption urls"
	case StageImagesFetched:
		return "fetch images"
	case StageComposited:
		return "composite images"
	case StageSaved:
		return "save card"
	default:
		return "unknown stage"
	}
}

// Terminal reports whether s is the last stage.
func (s Stage) Terminal() bool {
	return s == StageSaved
}

// next validates a transition from s to to.
func (s Stage) next(to Stage) error {
	if to != s+1 || to > StageSaved {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, to)
	}
	return nil
}

// StageError reports the stage whose work failed.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return e.Stage.action() + ": " + e.Err.Error()
}

func (e *StageError) Unwrap() error {
	return e.Err
}
