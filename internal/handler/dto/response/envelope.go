package response

// Envelope wraps every API response, success or not.
type Envelope struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Data    any        `json:"data"`
	Error   *ErrorBody `json:"error"`
}

type ErrorBody struct {
	Message string `json:"message"`
	Detail  any    `json:"detail,omitempty"`
}

func OK(message string, data any) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}

func Fail(message string, detail any) Envelope {
	return Envelope{Message: message, Error: &ErrorBody{Message: message, Detail: detail}}
}
