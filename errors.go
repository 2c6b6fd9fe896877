package login

import "errors"

// ErrMissingSessionHeader is returned when the request carries no session
// identifier header.
var ErrMissingSessionHeader = errors.New("session header is missing")

// ErrMalformedRequest is returned for bodies that are missing required
// fields or carry the wrong resource type.
var ErrMalformedRequest = errors.New("malformed request")

// ErrIDNotAllowed is returned when the client supplies a resource id on
// create; session ids are server generated.
var ErrIDNotAllowed = errors.New("id parameter is not allowed")

// ErrAuthenticationFailed covers unknown nicknames, wrong passwords and
// unusable inactive accounts uniformly, so callers cannot enumerate which
// part of the credential check failed.
var ErrAuthenticationFailed = errors.New("this combination of username and password cannot be found")

// ErrInvalidSession is returned when a session identifier does not resolve
// to a live session/account binding.
var ErrInvalidSession = errors.New("invalid session")

// ErrNoEmptyString is the error returned when hashing an empty password.
var ErrNoEmptyString = errors.New("password should not be an empty string")

// ErrMismatchedHashAndPassword is the error for a failed hash comparison.
var ErrMismatchedHashAndPassword = errors.New("mismatched hash and password")
