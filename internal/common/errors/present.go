package errors

import "errors"

// UserMessage translates any error into the human-readable string the UI
// renders. Authentication errors keep their backend-supplied message;
// transport errors collapse into a generic retry prompt.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var stdErr *StandardError
	if !errors.As(err, &stdErr) {
		return "Something went wrong. Please try again."
	}

	switch stdErr.Code {
	case ErrCodeLoginFailed, ErrCodeAlreadyRegistered:
		return stdErr.Message
	case ErrCodeRegisterFailed:
		return "Registration failed"
	case ErrCodeUnauthenticated:
		return "Please sign in to continue."
	case ErrCodeChatSendFailed:
		return "Sorry, I encountered an error. Please try again."
	default:
		return "Something went wrong. Please try again."
	}
}
