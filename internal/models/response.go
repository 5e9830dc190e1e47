package models

// InternalServerError is the fixed body message of every 500 response.
const InternalServerError = "Internal Server Error"

// Response is the envelope every endpoint answers with.
type Response struct {
	StatusCode int         `json:"statusCode"`
	Body       interface{} `json:"body"`
}

type MessageBody struct {
	Message string `json:"message"`
}

type ServerErrorBody struct {
	Error string `json:"error"`
}

// Başarılı response için helper
func SuccessResponse(statusCode int, body interface{}) Response {
	return Response{
		StatusCode: statusCode,
		Body:       body,
	}
}

// Hata response'u için helper
func ErrorResponse(statusCode int, message string) Response {
	return Response{
		StatusCode: statusCode,
		Body:       MessageBody{Message: message},
	}
}

func ServerErrorResponse() Response {
	return Response{
		StatusCode: 500,
		Body:       ServerErrorBody{Error: InternalServerError},
	}
}
