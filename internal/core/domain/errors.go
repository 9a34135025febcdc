package domain

import "go.trai.ch/zerr"

var (
	// ErrCommandRejected is returned when the panel answered a command with a
	// non-zero error indicator. The remote code and details message are
	// attached as metadata.
	ErrCommandRejected = zerr.New("command rejected by panel")

	// ErrMalformedResponse is returned when a panel response cannot be parsed.
	ErrMalformedResponse = zerr.New("malformed panel response")

	// ErrMissingField is returned when a required field is absent from a
	// response or resource snapshot.
	ErrMissingField = zerr.New("missing field")

	// ErrMalformedField is returned when a field is present but cannot be
	// parsed into its expected type.
	ErrMalformedField = zerr.New("malformed field")

	// ErrOwnerMismatch is returned when a resource snapshot declares an owner
	// that differs from the session's account. Accepting such a snapshot
	// would let later operations run against the wrong account.
	ErrOwnerMismatch = zerr.New("resource owner does not match session account")

	// ErrResourceNotFound is returned when a named resource is not present in
	// the account's listings.
	ErrResourceNotFound = zerr.New("resource not found")

	// ErrOperationRejected is returned by the application layer when the
	// panel refused an otherwise well-formed mutation.
	ErrOperationRejected = zerr.New("operation rejected")

	// ErrRequestFailed is returned when the HTTP round trip to the panel
	// could not be completed.
	ErrRequestFailed = zerr.New("panel request failed")

	// ErrConfigNotFound is returned when no panelctl configuration file can
	// be located.
	ErrConfigNotFound = zerr.New("could not find panelctl configuration")

	// ErrConfigReadFailed is returned when the configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read configuration file")

	// ErrConfigParseFailed is returned when the configuration file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse configuration file")

	// ErrConfigInvalid is returned when the configuration is missing required
	// values or contains unusable ones.
	ErrConfigInvalid = zerr.New("invalid configuration")
)
