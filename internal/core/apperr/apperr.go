package apperr

import "net/http"

// Err 业务错误：Status 为最终 HTTP 状态码，Msg 为对外文案
type Err struct {
	Status int
	Msg    string
	Cause  error
}

func (e *Err) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return "error"
}

func (e *Err) Unwrap() error { return e.Cause }

func BadRequest(msg string) error   { return &Err{Status: http.StatusBadRequest, Msg: msg} }
func Unauthorized(msg string) error { return &Err{Status: http.StatusUnauthorized, Msg: msg} }
func Forbidden(msg string) error    { return &Err{Status: http.StatusForbidden, Msg: msg} }
func NotFound(msg string) error     { return &Err{Status: http.StatusNotFound, Msg: msg} }

// Conflict 唯一键冲突；与原始行为保持一致走 400
func Conflict(msg string) error { return &Err{Status: http.StatusBadRequest, Msg: msg} }

// InsufficientStock 业务规则拒绝，400
func InsufficientStock(msg string) error { return &Err{Status: http.StatusBadRequest, Msg: msg} }

func Internal(msg string, cause error) error {
	return &Err{Status: http.StatusInternalServerError, Msg: msg, Cause: cause}
}
