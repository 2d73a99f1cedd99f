package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors represent business-level errors that can occur in the system.
// These errors are used across layers to communicate specific failure conditions.
var (
	// Argument errors
	ErrInvalidArgument = errors.New("invalid argument")

	// Slot errors
	ErrBackupNotFound = errors.New("backup not found")
	ErrBackupFailed   = errors.New("backup failed")
	ErrBackupLocked   = errors.New("backup root is locked by another operation")

	// Volume errors
	ErrVolumeUnavailable    = errors.New("volume unavailable")
	ErrHelperFailure        = errors.New("helper container failed")
	ErrTimeout              = errors.New("operation timed out")
	ErrPartialVolumeFailure = errors.New("some volumes failed")

	// Storage errors
	ErrIOFailure        = errors.New("i/o failure")
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

// VolumeBatchError carries the per-volume breakdown of a batch operation.
type VolumeBatchError struct {
	Total    int
	Failures []VolumeResult
}

func (e *VolumeBatchError) Error() string {
	parts := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		parts = append(parts, fmt.Sprintf("%s: %v", f.Name, f.Err))
	}
	return fmt.Sprintf("%d of %d volumes failed: %s", len(e.Failures), e.Total, strings.Join(parts, "; "))
}

// Partial reports whether at least one volume of the batch succeeded.
func (e *VolumeBatchError) Partial() bool {
	return len(e.Failures) < e.Total
}

// Unwrap exposes every per-volume error, plus ErrPartialVolumeFailure when
// only part of the batch failed.
func (e *VolumeBatchError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failures)+1)
	if e.Partial() {
		errs = append(errs, ErrPartialVolumeFailure)
	}
	for _, f := range e.Failures {
		errs = append(errs, f.Err)
	}
	return errs
}
