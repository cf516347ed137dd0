package response

// Envelope wraps every successful API response.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

func WithMessage(message string, data any) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}
