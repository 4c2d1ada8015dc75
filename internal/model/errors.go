package model

import (
	"errors"
	"fmt"
)

// ErrExportBusy is returned when an export is requested while another one
// is still in progress for the same pipeline.
var ErrExportBusy = errors.New("export already in progress")

// TargetNotFoundError means the capture marker is missing from the
// rendered document
type TargetNotFoundError struct {
	Selector string
}

func (e *TargetNotFoundError) Error() string {
	return fmt.Sprintf("capture target %q not found", e.Selector)
}

// NewTargetNotFoundError creates a new target-not-found error
func NewTargetNotFoundError(selector string) *TargetNotFoundError {
	return &TargetNotFoundError{Selector: selector}
}

// CaptureError represents a failure while rasterizing the rendered document
type CaptureError struct {
	Stage   string // navigate, stabilize, measure, screenshot, restore
	Message string
	Cause   error
}

func (e *CaptureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("capture failed [%s]: %s (%v)", e.Stage, e.Message, e.Cause)
	}
	return fmt.Sprintf("capture failed [%s]: %s", e.Stage, e.Message)
}

func (e *CaptureError) Unwrap() error {
	return e.Cause
}

// NewCaptureError creates a new capture error
func NewCaptureError(stage, message string, cause error) *CaptureError {
	return &CaptureError{
		Stage:   stage,
		Message: message,
		Cause:   cause,
	}
}

// ExportError represents a failure while packaging a snapshot into an
// output file. It is the only error kind the export pipeline returns for
// encoding problems; nothing is thrown past the pipeline boundary.
type ExportError struct {
	Format  string // pdf or png
	Stage   string // render, capture, encode, validate
	Message string
	Cause   error
}

func (e *ExportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s export failed [%s]: %s (%v)", e.Format, e.Stage, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s export failed [%s]: %s", e.Format, e.Stage, e.Message)
}

func (e *ExportError) Unwrap() error {
	return e.Cause
}

// NewExportError creates a new export error
func NewExportError(format, stage, message string, cause error) *ExportError {
	return &ExportError{
		Format:  format,
		Stage:   stage,
		Message: message,
		Cause:   cause,
	}
}
