package response

const (
	MessageSuccess       = "Success"
	MessageInternalError = "Something went wrong"
	MessageValidation    = "Invalid request"

	CodeSuccess       = 0
	CodeValidation    = 400
	CodeInternalError = 500
)
