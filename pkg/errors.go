package cargov

import "errors"

// Errors reported by the version pipeline. Callers match them with errors.Is;
// the returned errors wrap these with the offending input.
var (
	ErrManifestMissingVersion = errors.New("manifest does not have a version line")
	ErrInvalidFormat          = errors.New("invalid version format")
	ErrInvalidDigit           = errors.New("invalid digit in version")
	ErrVersionNotGreater      = errors.New("you can not set a version lower than or equal to the current version")
	ErrOverflow               = errors.New("version component overflow")
	ErrUnknownBump            = errors.New("unknown bump argument")
	ErrTagExists              = errors.New("release tag already exists")
)

// Errors wrapped around failures of the collaborators that touch the
// filesystem or spawn processes.
var (
	ErrIO      = errors.New("io error")
	ErrProcess = errors.New("process error")
)
