package response

import "net/http"

// FieldErrors 按字段归类的错误信息，对应 {"errors": {field: [messages]}} 响应体
type FieldErrors map[string][]string

// BusinessError 业务错误
// Status 为 HTTP 状态码，Errors 为字段级错误，Msg 为整体错误消息（二者取其一）
type BusinessError struct {
	Status int
	Errors FieldErrors
	Msg    string
	Err    error
}

type ErrorOption func(*BusinessError)

func WithStatus(status int) ErrorOption {
	return func(be *BusinessError) {
		be.Status = status
	}
}

func WithFieldError(field, message string) ErrorOption {
	return func(be *BusinessError) {
		if be.Errors == nil {
			be.Errors = FieldErrors{}
		}
		be.Errors[field] = append(be.Errors[field], message)
	}
}

func WithErrorMessage(msg string) ErrorOption {
	return func(be *BusinessError) {
		be.Msg = msg
	}
}

func WithError(err error) ErrorOption {
	return func(be *BusinessError) {
		be.Err = err
	}
}

func NewBusinessError(opts ...ErrorOption) *BusinessError {
	err := &BusinessError{
		Status: http.StatusInternalServerError,
		Msg:    "business error",
	}
	for _, opt := range opts {
		opt(err)
	}
	return err
}

// Blank 必填字段为空，422
func Blank(field string) *BusinessError {
	return NewBusinessError(
		WithStatus(http.StatusUnprocessableEntity),
		WithFieldError(field, "can't be blank"),
	)
}

// NotFound 资源不存在，404
func NotFound(resource string) *BusinessError {
	return NewBusinessError(
		WithStatus(http.StatusNotFound),
		WithFieldError(resource, "not found"),
	)
}

// Forbidden 越权操作，403
func Forbidden(msg string) *BusinessError {
	return NewBusinessError(
		WithStatus(http.StatusForbidden),
		WithErrorMessage(msg),
	)
}

// Unauthenticated 未提供有效凭证，401
func Unauthenticated(msg string) *BusinessError {
	return NewBusinessError(
		WithStatus(http.StatusUnauthorized),
		WithErrorMessage(msg),
	)
}

// Internal 未预期的底层错误，500
func Internal(err error) *BusinessError {
	return NewBusinessError(
		WithStatus(http.StatusInternalServerError),
		WithErrorMessage("internal server error"),
		WithError(err),
	)
}
