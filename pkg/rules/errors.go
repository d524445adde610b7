package rules

import "errors"

var (
	// ErrRegistrySealed is returned when a processor is registered after the registry built its first chain.
	ErrRegistrySealed = errors.New("registry is sealed: processors must be registered before the first build")

	// ErrNilProcessor is returned when registering a nil processor.
	ErrNilProcessor = errors.New("nil processor")

	// ErrBuildFailed is returned when a claimed descriptor cannot be turned into a constraint.
	ErrBuildFailed = errors.New("failed to build constraint")

	// ErrUnknownHandler is returned when a manifest has no entry for the requested handler.
	ErrUnknownHandler = errors.New("handler not declared in manifest")

	// ErrFailedToParseManifest is returned when a manifest document is malformed.
	ErrFailedToParseManifest = errors.New("failed to parse rules manifest")
)
