package service

import "errors"

// Gateway error taxonomy. Every gateway operation fails with exactly one of
// these (possibly wrapped); callers branch with [errors.Is].
var (
	// ErrUnauthenticated means no principal is logged in. The operation was
	// refused before any repository access; callers should route to login.
	ErrUnauthenticated = errors.New("no active session")

	// ErrAuthenticationFailed is the opaque login failure. Unknown email
	// and wrong password share this surface to prevent user enumeration.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrDuplicateEmail is the registration conflict.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrRecordNotFound covers both "record absent" and "record owned by
	// someone else". Callers cannot tell the two apart.
	ErrRecordNotFound = errors.New("record not found")

	// ErrCrypto means a hash or cipher operation failed. Fatal to the
	// single operation; never degraded to plaintext.
	ErrCrypto = errors.New("crypto operation failed")

	// ErrPersistence is an underlying storage failure, surfaced without an
	// automatic retry.
	ErrPersistence = errors.New("storage operation failed")
)
