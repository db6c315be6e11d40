package response

import (
	"net/http"
	"time"

	deliverycontext "dashboard/internal/delivery/context"
	domainerrors "dashboard/internal/domain/errors"
	"dashboard/internal/domain/query"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TimestampLayout is ISO-8601 in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// now is replaced in tests.
var now = time.Now

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data"`
	Meta    *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Success bool       `json:"success"`
	Error   *ErrorInfo `json:"error"`
	Meta    *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`    // One of the domainerrors codes, e.g. "VALIDATION"
	Message string `json:"message"` // User-friendly error message
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID  string          `json:"requestId"`
	Timestamp  string          `json:"timestamp"`
	Pagination *PaginationInfo `json:"pagination,omitempty"`
}

// PaginationInfo describes the page returned by a list endpoint
type PaginationInfo struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

func newMeta(c echo.Context) *MetaInfo {
	return &MetaInfo{
		RequestID: deliverycontext.GetRequestID(c),
		Timestamp: now().UTC().Format(TimestampLayout),
	}
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Success: true,
		Data:    data,
		Meta:    newMeta(c),
	})
}

// Paginated returns a page of items together with its pagination block
func Paginated[T any](c echo.Context, page query.Page[T]) error {
	meta := newMeta(c)
	meta.Pagination = &PaginationInfo{
		Total: page.Total,
		Page:  page.Page,
		Limit: page.Limit,
		Pages: page.Pages(),
	}

	items := page.Items
	if items == nil {
		items = []T{}
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Data:    items,
		Meta:    meta,
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
		},
		Meta: newMeta(c),
	})
}

// Validation returns a 400 error
func Validation(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, domainerrors.CodeValidation, message)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, domainerrors.CodeUnauthorized, message)
}

// NotFound returns a 404 error
func NotFound(c echo.Context, message string) error {
	return Error(c, http.StatusNotFound, domainerrors.CodeNotFound, message)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, message string) error {
	return Error(c, http.StatusInternalServerError, domainerrors.CodeInternalError, message)
}

// AppErrorMessage is the client-facing message of appErr. Details are only
// exposed for 4xx errors.
func AppErrorMessage(appErr domainerrors.AppError) string {
	if appErr.HTTPCode() >= http.StatusInternalServerError || appErr.Details() == "" {
		return appErr.Message()
	}

	return appErr.Message() + ": " + appErr.Details()
}

// HandleAppError handles application errors, converting domain errors to appropriate HTTP responses.
// Anything else is returned for the central error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), AppErrorMessage(appErr))
	}

	return errors.WithStack(err)
}
