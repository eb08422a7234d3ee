package dto

// ErrorResponse — конверт ошибки, который отдаёт граница HTTP (401/403).
type ErrorResponse struct {
	Result       bool   `json:"result"`
	ErrorType    string `json:"error_type"`
	ErrorMessage string `json:"error_message"`
}

func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{
		Result:       false,
		ErrorType:    "HTTPException",
		ErrorMessage: message,
	}
}
