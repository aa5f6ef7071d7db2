package response

// Standard messages and codes for the JSON envelope.
const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Internal server error"

	InternalServerErrorCode = 500
	NotFoundErrorCode       = 404

	DateTimeFormat = "2006-01-02 15:04:05"
)
