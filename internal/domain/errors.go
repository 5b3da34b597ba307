package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound          = errors.New("resource not found")
	ErrMemberNotFound    = errors.New("member not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrDuplicate         = errors.New("duplicate resource")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("access denied")
	ErrNotAllowed        = errors.New("not allowed")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrUnsupportedLocale = errors.New("unsupported locale")
	ErrAlreadySignedUp   = errors.New("already signed up")
	ErrSignupClosed      = errors.New("signup list is not open")
	ErrCaptchaFailed     = errors.New("captcha verification failed")
)

// NotAllowedError is returned by every service method that checks a permission before acting.
// Message is already translated to the locale of the request.
type NotAllowedError struct {
	Resource string
	Action   string
	Message  string
}

func (e *NotAllowedError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return ErrNotAllowed.Error() + ": " + e.Action + " on " + e.Resource
}

// Is makes errors.Is(err, ErrNotAllowed) hold for every NotAllowedError.
func (e *NotAllowedError) Is(target error) bool {
	return target == ErrNotAllowed
}
