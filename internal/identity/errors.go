package identity

import "errors"

// Provider error codes.
const (
	CodeInvalidCredential  = "auth/invalid-credential"
	CodeUserNotFound       = "auth/user-not-found"
	CodeWrongPassword      = "auth/wrong-password"
	CodeUserDisabled       = "auth/user-disabled"
	CodeTooManyRequests    = "auth/too-many-requests"
	CodeInvalidEmail       = "auth/invalid-email"
	CodeEmailAlreadyInUse  = "auth/email-already-in-use"
	CodeWeakPassword       = "auth/weak-password"
	CodeUserTokenExpired   = "auth/user-token-expired"
	CodeInvalidActionCode  = "auth/invalid-action-code"
	CodeMissingCredentials = "auth/missing-credentials"
)

// Error is an identity provider failure identified by its code
type Error struct {
	Code string
}

func (e *Error) Error() string {
	return "identity: " + e.Code
}

// Is matches errors by code
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

var (
	ErrInvalidCredential  = &Error{Code: CodeInvalidCredential}
	ErrUserNotFound       = &Error{Code: CodeUserNotFound}
	ErrWrongPassword      = &Error{Code: CodeWrongPassword}
	ErrUserDisabled       = &Error{Code: CodeUserDisabled}
	ErrTooManyRequests    = &Error{Code: CodeTooManyRequests}
	ErrInvalidEmail       = &Error{Code: CodeInvalidEmail}
	ErrEmailAlreadyInUse  = &Error{Code: CodeEmailAlreadyInUse}
	ErrWeakPassword       = &Error{Code: CodeWeakPassword}
	ErrSessionExpired     = &Error{Code: CodeUserTokenExpired}
	ErrInvalidResetToken  = &Error{Code: CodeInvalidActionCode}
	ErrMissingCredentials = &Error{Code: CodeMissingCredentials}
)

// DefaultMessage is shown for failures without a specific message.
const DefaultMessage = "Something went wrong. Please try again."

var messages = map[string]string{
	CodeInvalidCredential:  "Incorrect email or password. Please try again.",
	CodeUserNotFound:       "No account found with that email.",
	CodeWrongPassword:      "Wrong password entered.",
	CodeUserDisabled:       "Your account has been disabled.",
	CodeTooManyRequests:    "Too many attempts. Please try again later.",
	CodeInvalidEmail:       "This email address is not valid.",
	CodeEmailAlreadyInUse:  "An account with this email already exists.",
	CodeWeakPassword:       "Password should be at least 6 characters.",
	CodeUserTokenExpired:   "Your session has expired. Please log in again.",
	CodeInvalidActionCode:  "This password reset link is invalid or has expired.",
	CodeMissingCredentials: "Please enter your email and password.",
}

// Code returns the provider code carried by err, or "" when there is none.
func Code(err error) string {
	var idErr *Error
	if errors.As(err, &idErr) {
		return idErr.Code
	}
	return ""
}

// Message maps a provider failure to the text shown to the user.
func Message(err error) string {
	if msg, ok := messages[Code(err)]; ok {
		return msg
	}
	return DefaultMessage
}
