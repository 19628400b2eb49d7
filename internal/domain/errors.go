package domain

import "errors"

// Domain errors.
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrBlockedSubcommand = errors.New("fastboot subcommand is blocked by policy")
	ErrUnresolvedBinary  = errors.New("binary not found on PATH")
	ErrWriteFailed       = errors.New("cannot write to output directory")
	ErrNoDeviceSelected  = errors.New("no device serial selected")
	ErrNoDevices         = errors.New("no devices attached")
	ErrNotInteractive    = errors.New("standard input is not a terminal")
	ErrUnknownOperation  = errors.New("unknown operation")
	ErrEmptyCommand      = errors.New("command must contain at least the program name")
)
