package shared

import (
	"errors"
	"net/http"
)

// Стабильные коды ошибок API
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeUpload     = "UPLOAD_ERROR"
	CodeDatabase   = "DATABASE_ERROR"
)

type AppError struct {
	Code    string
	Status  int
	Message string
	Err     error
}

func (e *AppError) Error() string { return e.Message }

func (e *AppError) Unwrap() error { return e.Err }

func ValidationError(msg string) *AppError {
	return &AppError{Code: CodeValidation, Status: http.StatusBadRequest, Message: msg}
}

func NotFoundError(msg string) *AppError {
	return &AppError{Code: CodeNotFound, Status: http.StatusNotFound, Message: msg}
}

func UploadError(msg string, err error) *AppError {
	return &AppError{Code: CodeUpload, Status: http.StatusInternalServerError, Message: msg, Err: err}
}

func DatabaseError(err error) *AppError {
	return &AppError{Code: CodeDatabase, Status: http.StatusInternalServerError, Message: "database error", Err: err}
}

// AsAppError возвращает типизированную ошибку, если она есть в цепочке
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
