package response

// Error codes used in the standard response envelope.
const (
	ErrorCodeSuccess        = 0
	ErrorCodeGeneric        = 1
	InternalServerErrorCode = 500
)

// Default messages.
const (
	MessageSuccess      = "success"
	DefaultErrorMessage = "Something went wrong. Please try again later."
)

// Date formats used by the Date/DateTime marshalers.
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
