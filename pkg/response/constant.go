package response

// Envelope constants.
const (
	MessageSuccess          = "success"
	DefaultErrorMessage     = "internal server error"
	InternalServerErrorCode = 500
	NotFoundErrorCode       = 404

	DateTimeFormat = "2006-01-02 15:04:05"
)
