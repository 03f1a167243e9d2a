package domain

import "errors"

var (
	ErrValidation = errors.New("invalid input")

	ErrInvalidCredentials = errors.New("email or password is incorrect")
	ErrTokenInvalid       = errors.New("token is invalid or expired")

	ErrUserNotFound    = errors.New("user not found")
	ErrProductNotFound = errors.New("product not found")
	ErrCountryNotFound = errors.New("country not found")

	ErrEmailTaken            = errors.New("email is already registered")
	ErrCountryAlreadyVisited = errors.New("country has already been added")
)

// Kind groups errors by how they surface to the user.
type Kind int

const (
	KindDependency Kind = iota
	KindValidation
	KindAuth
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "dependency"
	}
}

// KindOf classifies err. Anything unrecognised is a dependency failure.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindDependency
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrTokenInvalid):
		return KindAuth
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrProductNotFound), errors.Is(err, ErrCountryNotFound):
		return KindNotFound
	case errors.Is(err, ErrEmailTaken), errors.Is(err, ErrCountryAlreadyVisited):
		return KindConflict
	default:
		return KindDependency
	}
}
