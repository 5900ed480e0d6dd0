package serverutils

import "babybook-be/internal/apperror"

type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

type ErrorBody struct {
	Success    bool                      `json:"success"`
	Message    string                    `json:"message"`
	Violations []apperror.FieldViolation `json:"violations,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(message string, violations []apperror.FieldViolation) ErrorBody {
	return ErrorBody{
		Success:    false,
		Message:    message,
		Violations: violations,
	}
}
