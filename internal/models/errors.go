package models

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrNoAudioStream    = errors.New("no audio stream")
	ErrConversionFailed = errors.New("conversion failed")
	ErrTooLarge         = errors.New("file too large")
	ErrTextTooShort     = errors.New("text too short")
	ErrBackend          = errors.New("backend error")
	ErrBusy             = errors.New("another analysis is running")
)

// TooLargeError is returned when an asset exceeds the upload ceiling.
type TooLargeError struct {
	Size     int64
	Limit    int64
	Degraded bool
}

func (e *TooLargeError) Error() string {
	sizeMB := float64(e.Size) / 1024 / 1024
	limitMB := float64(e.Limit) / 1024 / 1024
	if e.Degraded {
		return fmt.Sprintf("file too large: %.1f MB exceeds %.0f MB; audio was never optimized because conversion failed", sizeMB, limitMB)
	}
	return fmt.Sprintf("file too large: %.1f MB exceeds %.0f MB even after optimization", sizeMB, limitMB)
}

func (e *TooLargeError) Is(target error) bool {
	return target == ErrTooLarge
}

// Stage names a pipeline step.
type Stage string

const (
	StageValidate   Stage = "validate"
	StageMetadata   Stage = "metadata"
	StageAcquire    Stage = "acquire"
	StageNormalize  Stage = "normalize"
	StageTranscribe Stage = "transcribe"
	StageSummarize  Stage = "summarize"
	StageAnalyze    Stage = "analyze"
)

// StageError records which stage failed.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// FailedStage extracts the stage from err, if any.
func FailedStage(err error) (Stage, bool) {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage, true
	}
	return "", false
}
