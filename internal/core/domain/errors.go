package domain

// FallbackErrorMessage is used when the remote API reports a failure without
// a message of its own.
const FallbackErrorMessage = "request failed"

// APIError is a non-2xx response from the remote QuillBoard API, normalized
// to the server-provided message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return FallbackErrorMessage
	}
	return e.Message
}
