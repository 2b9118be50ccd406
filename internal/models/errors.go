package models

import "errors"

// Domain-specific errors surfaced by the import pipeline
var (
	// ErrUnknownProject indicates a task references a project ID that was
	// not present in the project lookup built for this import
	ErrUnknownProject = errors.New("task references an unknown project")

	// ErrMissingToken indicates no API token was found in the config file
	// or the environment
	ErrMissingToken = errors.New("no API token configured")
)
