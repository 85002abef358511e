package users

import "errors"

var (
	// ErrMalformedPayload means the webhook body could not be parsed.
	ErrMalformedPayload = errors.New("malformed payload")

	// ErrMissingIdentity means no usable identity id was found in the payload.
	ErrMissingIdentity = errors.New("missing identity")

	// ErrStoreWrite wraps every failure of the users insert.
	ErrStoreWrite = errors.New("store write failed")

	ErrNotFound      = errors.New("user not found")
	ErrAlreadyExists = errors.New("user already exists")
	ErrUnknownRole   = errors.New("role does not exist")
)

const (
	ErrorCodeMissingIdentity = "missing_identity"
	ErrorCodeMalformed       = "malformed_payload"
	ErrorCodeStoreWrite      = "store_write_failed"
)
