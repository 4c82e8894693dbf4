package app

import (
	"errors"
	"strings"
	"testing"

	"github.com/bft-labs/catcard/internal/domain"
)

func TestStage_String(t *testing.T) {
	tests := []struct {
		stage Stage
		want  string
	}{
		{StageStart, "Start"},
		{StageURLBuilt, "URLBuilt"},
		{StageURLsDerived, "URLsDerived"},
		{StageImagesFetched, "ImagesFetched"},
		{StageComposited, "Composited"},
		{StageSaved, "Saved"},
		{Stage(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.stage.String(); got != tt.want {
			t.Errorf("Stage(%d).String() = %s, want %s", tt.stage, got, tt.want)
		}
	}
}

func TestStage_Next(t *testing.T) {
	tests := []struct {
		name    string
		from    Stage
		to      Stage
		wantErr bool
	}{
		{"Start to URLBuilt", StageStart, StageURLBuilt, false},
		{"URLBuilt to URLsDerived", StageURLBuilt, StageURLsDerived, false},
		{"URLsDerived to ImagesFetched", StageURLsDerived, StageImagesFetched, false},
		{"ImagesFetched to Composited", StageImagesFetched, StageComposited, false},
		{"Composited to Saved", StageComposited, StageSaved, false},
		{"skip a stage", StageStart, StageURLsDerived, true},
		{"backwards", StageComposited, StageURLBuilt, true},
		{"repeat", StageURLBuilt, StageURLBuilt, true},
		{"past Saved", StageSaved, StageSaved + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.from.next(tt.to)
			if (err != nil) != tt.wantErr {
				t.Fatalf("next() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("next() error = %v, want ErrInvalidTransition", err)
			}
		})
	}
}

func TestStage_Terminal(t *testing.T) {
	for s := StageStart; s < StageSaved; s++ {
		if s.Terminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}
	if !StageSaved.Terminal() {
		t.Error("Saved should be terminal")
	}
}

func TestStageError(t *testing.T) {
	err := &StageError{Stage: StageImagesFetched, Err: domain.ErrFetch}

	if !errors.Is(err, domain.ErrFetch) {
		t.Error("StageError should unwrap to its cause")
	}
	if !strings.HasPrefix(err.Error(), "fetch images: ") {
		t.Errorf("Error() = %q, want prefix %q", err.Error(), "fetch images: ")
	}

	var se *StageError
	if !errors.As(error(err), &se) || se.Stage != StageImagesFetched {
		t.Errorf("errors.As did not recover the stage")
	}
}
