package request

import (
	"errors"
	"net/http"
)

const (
	MsgRequestFailed  = "请求失败"
	MsgSessionExpired = "登录已过期，请重新登录"
	MsgNetworkError   = "网络错误"
)

var (
	// ErrUnauthorized 传输层返回 401
	ErrUnauthorized = errors.New("unauthorized")
	// ErrTokenMissing 本地存储中没有 token，请求不会发出
	ErrTokenMissing = errors.New("token missing")
)

// ApplicationError 业务失败，envelope 的 code 不为 200
type ApplicationError struct {
	Code    int
	Message string
}

func (e *ApplicationError) Error() string {
	return e.Message
}

// TransportError 网络或 HTTP 层失败
type TransportError struct {
	Status  int //HTTP状态码，网络错误时为0
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	return e.Message
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}
