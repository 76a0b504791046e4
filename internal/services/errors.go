package services

// ErrorKind is the closed set of ways a rate fetch can fail.
type ErrorKind int

const (
	// ErrTransport — the upstream endpoint could not be reached at all.
	ErrTransport ErrorKind = iota
	// ErrUpstream — the endpoint answered, but with a non-200 status or a
	// result flag other than "success".
	ErrUpstream
	// ErrMissingData — a well-formed response without a usable NGN rate.
	ErrMissingData
	// ErrUnexpected — anything else that went wrong while processing.
	ErrUnexpected
)

// FetchError is the failure half of a fetch outcome. Message is what both
// presenters show the user verbatim.
type FetchError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *FetchError) Error() string {
	return e.Message
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

func transportError(cause error) *FetchError {
	return &FetchError{
		Kind:    ErrTransport,
		Message: "Request failed: " + cause.Error(),
		Cause:   cause,
	}
}

func upstreamError(errorType string) *FetchError {
	if errorType == "" {
		errorType = "Unknown error"
	}
	return &FetchError{
		Kind:    ErrUpstream,
		Message: "API Error: " + errorType,
	}
}

func missingDataError() *FetchError {
	return &FetchError{
		Kind:    ErrMissingData,
		Message: "NGN rate not found in the response",
	}
}

func unexpectedError(cause error) *FetchError {
	return &FetchError{
		Kind:    ErrUnexpected,
		Message: "An unexpected error occurred: " + cause.Error(),
		Cause:   cause,
	}
}
