package dto

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
