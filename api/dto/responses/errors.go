// ABOUTME: Error response DTO shared by all API endpoints
// ABOUTME: Carries a machine-readable code and a human-readable message

package responses

// ErrorResponse is the JSON body returned for failed requests
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
