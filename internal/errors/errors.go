package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrArticleNotFound is returned when an article is not found.
	ErrArticleNotFound = errors.New("article not found")
	// ErrCategoryNotFound is returned when an article category is not found.
	ErrCategoryNotFound = errors.New("article category not found")
	// ErrCategoryExists is returned when a category name is already taken.
	ErrCategoryExists = errors.New("category already existed")
	// ErrClassNotFound is returned when an offline class is not found.
	ErrClassNotFound = errors.New("offline class not found")
	// ErrNoArticles is returned when an article query matches nothing.
	ErrNoArticles = errors.New("no articles found")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrArticleNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "ARTICLE_NOT_FOUND")
	case ErrCategoryNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "CATEGORY_NOT_FOUND")
	case ErrClassNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "CLASS_NOT_FOUND")
	case ErrNoArticles:
		return NewHTTPError(http.StatusNotFound, "no data", "NO_DATA")
	case ErrCategoryExists:
		return NewHTTPError(http.StatusConflict, err.Error(), "CATEGORY_EXISTS")
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
