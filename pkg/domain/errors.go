package domain

import "errors"

// ErrPartialArguments is returned when only some of the direct-run flags are set.
var ErrPartialArguments = errors.New("if any cmd line args are set, all arguments must be provided")

// ErrInputClosed is returned when the prompt stream ends before a value was read.
var ErrInputClosed = errors.New("input stream closed")

// ErrUnknownOperation is returned when an Operation outside the known set is dispatched.
var ErrUnknownOperation = errors.New("unknown operation")

// ErrEmptyCommand is returned when a Command has no executable path.
var ErrEmptyCommand = errors.New("command has no executable")

// ErrInvalidSequence is returned when a sequence contains anything but A-Z.
var ErrInvalidSequence = errors.New("invalid sequence: only uppercase letters A-Z are allowed")

// ErrInvalidAllele is returned when an allele contains characters outside A-Z, 0-9, ':', '*', '-'.
var ErrInvalidAllele = errors.New("invalid allele: only uppercase letters, digits, ':', '*' and '-' are allowed")
