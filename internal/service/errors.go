package service

import (
	"errors"
	"fmt"

	"github.com/plsapi/backend/internal/db"
)

var (
	// ErrInvalidToken covers every bearer failure: bad signature, wrong
	// algorithm, malformed payload, elapsed expiry, empty subject.
	ErrInvalidToken = errors.New("invalid token")
	// ErrNotMember is returned when the Discord account is not in the required guild.
	ErrNotMember = errors.New("not a member of required community")
	// ErrUpstreamAuth wraps failures talking to the identity provider.
	ErrUpstreamAuth = errors.New("identity provider error")
	// ErrForbidden is returned when a valid caller lacks the required role.
	ErrForbidden = errors.New("forbidden")
	// ErrUpstreamLookup wraps failures talking to the video metadata API.
	ErrUpstreamLookup = errors.New("video metadata lookup failed")

	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrValidation    = errors.New("validation error")
	ErrMisconfigured = errors.New("auth config invalid")
)

// mapRepoError turns storage failures into the sentinels above. Anything
// unrecognised is returned unchanged and surfaces as a 500.
func mapRepoError(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case db.IsNoRows(err):
		return fmt.Errorf("%w: %s", ErrNotFound, what)
	case db.IsUniqueViolation(err):
		return fmt.Errorf("%w: %s already exists", ErrConflict, what)
	case db.IsForeignKeyViolation(err):
		return fmt.Errorf("%w: %s references a missing record", ErrValidation, what)
	case db.IsConstraintViolation(err):
		return fmt.Errorf("%w: %s violates a constraint", ErrValidation, what)
	}
	return err
}
