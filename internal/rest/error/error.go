package error

// ApiError is the JSON error body returned by the public REST API.
type ApiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}
