package types

import "errors"

var (
	// ErrUnsupportedFileType marks a file whose media type has no extractor.
	// It is a per-file failure and never aborts a batch.
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrRemoteUnavailable wraps any remote persistence failure. Reads and
	// writes degrade to the local cache instead of surfacing it.
	ErrRemoteUnavailable = errors.New("remote service unavailable")

	// ErrInvalidImportFormat rejects a malformed library file. Import aborts
	// with no partial application.
	ErrInvalidImportFormat = errors.New("invalid library file format")

	// ErrReadFailure marks a local file that could not be read during upload.
	ErrReadFailure = errors.New("failed to read file")

	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
