package session

import "errors"

// Typed failures surfaced to the front-end for direct display. None are
// retried automatically: they are configuration or environment problems a
// human has to fix.
var (
	// ErrInvalidWorkingDirectory means the project's working directory
	// does not exist.
	ErrInvalidWorkingDirectory = errors.New("working directory does not exist")

	// ErrProviderDisabled means the resolved provider is turned off.
	ErrProviderDisabled = errors.New("provider is disabled")

	// ErrSpawnFailed means the OS refused to start the terminal process.
	ErrSpawnFailed = errors.New("failed to spawn terminal")

	// ErrSessionAlreadyRunning means the project already has a live
	// session; it is left untouched.
	ErrSessionAlreadyRunning = errors.New("session already running for this project")

	// ErrNoSession means no session record exists for the project.
	ErrNoSession = errors.New("no session for this project")
)
