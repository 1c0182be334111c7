package dto

// Envelope is the body of every successful JSON response.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// OK wraps data in a successful envelope.
func OK(data interface{}) Envelope {
	return Envelope{Success: true, Data: data}
}

// OKMessage is a successful envelope carrying only a message.
func OKMessage(message string) Envelope {
	return Envelope{Success: true, Message: message}
}

// OKWithMessage wraps data and a message in a successful envelope.
func OKWithMessage(data interface{}, message string) Envelope {
	return Envelope{Success: true, Data: data, Message: message}
}
