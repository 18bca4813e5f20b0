package domain

import (
	"errors"
	"os"
)

const (
	RoleUser       = "user"
	RoleRestaurant = "restaurant"
)

// Stable error kinds surfaced to clients alongside the human message.
const (
	KindNotFound          = "not_found"
	KindConflict          = "conflict"
	KindInvalidInput      = "invalid_input"
	KindDependencyFailure = "dependency_failure"
)

var (
	MessageFailedBodyRequest    = "failed to process request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"
	MessageUserNotAllowed       = "user not allowed"

	JwtSecret = os.Getenv("JWT_SECRET")

	ErrParseUUID      = errors.New("failed to parse UUID")
	ErrUserNotAllowed = errors.New("user not allowed")
	ErrTokenNotFound  = errors.New("failed to token not found")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")
)

// Kind classifies a service error into one of the four stable kinds.
// Unknown errors count as dependency failures (storage or collaborator).
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrRestaurantNotFound),
		errors.Is(err, ErrMenuNotFound),
		errors.Is(err, ErrDishNotFound),
		errors.Is(err, ErrSessionNotFound),
		errors.Is(err, ErrCartNotFound),
		errors.Is(err, ErrCartLineNotFound),
		errors.Is(err, ErrOrderNotFound),
		errors.Is(err, ErrConversationNotFound):
		return KindNotFound
	case errors.Is(err, ErrSessionCollision),
		errors.Is(err, ErrUserAlreadyExists),
		errors.Is(err, ErrRestaurantAlreadyExists),
		errors.Is(err, ErrDishAlreadyInMenu):
		return KindConflict
	case errors.Is(err, ErrInvalidQuantity),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrMissingRequiredField),
		errors.Is(err, ErrInvalidCartOperation),
		errors.Is(err, ErrInvalidRating),
		errors.Is(err, ErrParseUUID):
		return KindInvalidInput
	default:
		return KindDependencyFailure
	}
}
