package errorx

import (
	"errors"
	"fmt"
)

// 定义业务错误
var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrVendorNotFound    = errors.New("vendor not found")
	ErrRiderNotFound     = errors.New("rider not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrDeliveryNotFound  = errors.New("delivery not found")
	ErrQuotationNotFound = errors.New("quotation not found")
	ErrDocumentNotFound  = errors.New("document not found")
	ErrStageNotAdvanced  = errors.New("stage can only advance one step forward")
	ErrInvalidStatus     = errors.New("invalid status value")
)

// Kind 错误分类（对应前端的四类失败语义）
type Kind int

const (
	// KindConnection 网络/连接失败
	KindConnection Kind = iota + 1
	// KindUpstream 上游返回非 2xx，error 字段原样透传
	KindUpstream
	// KindInvalidResponse 上游返回 HTML 等非 JSON 响应
	KindInvalidResponse
	// KindValidation 客户端校验失败（未发起网络调用）
	KindValidation
)

// Error 错误结构
type Error struct {
	Kind       Kind   `json:"-"`
	Code       int    `json:"code"`
	Message    string `json:"message"`
	DevDetails string `json:"dev_details,omitempty"`
}

// Error 实现 error 接口
func (e *Error) Error() string {
	return e.Message
}

// Connection 创建连接失败错误
func Connection(err error) *Error {
	return &Error{
		Kind:       KindConnection,
		Code:       502,
		Message:    "connection error, please try again",
		DevDetails: fmt.Sprintf("%v", err),
	}
}

// Upstream 创建上游错误（message 必须原样保留上游返回的 error 字段）
func Upstream(httpCode int, message string) *Error {
	return &Error{
		Kind:    KindUpstream,
		Code:    httpCode,
		Message: message,
	}
}

// InvalidResponse 创建非法响应错误（上游返回了 HTML 错误页）
func InvalidResponse() *Error {
	return &Error{
		Kind:    KindInvalidResponse,
		Code:    502,
		Message: "server returned invalid response",
	}
}

// Validation 创建客户端校验错误
func Validation(message string) *Error {
	return &Error{
		Kind:    KindValidation,
		Code:    400,
		Message: message,
	}
}

// KindOf 返回错误分类，非 *Error 返回 0
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// Wrap 包装错误
func Wrap(err error) *Error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) {
		return e
	}

	return &Error{
		Kind:       KindUpstream,
		Code:       500,
		Message:    err.Error(),
		DevDetails: fmt.Sprintf("%+v", err),
	}
}
