package vo

// CodeSuccess 业务成功状态码，其余一律视为失败
const CodeSuccess = 200

// Response 统一响应结构
type Response[T any] struct {
	Code    int    `json:"code"`    //状态码
	Message string `json:"message"` //返回信息
	Data    T      `json:"data"`    //主要的数据
}

func (r *Response[T]) Success() bool {
	return r != nil && r.Code == CodeSuccess
}

// Unwrap 取出data
func (r *Response[T]) Unwrap() T {
	if r == nil {
		var zero T
		return zero
	}
	return r.Data
}

// Ok 构造成功响应
func Ok[T any](data T, message string) Response[T] {
	if message == "" {
		message = "success"
	}
	return Response[T]{Code: CodeSuccess, Message: message, Data: data}
}

// Fail 构造失败响应
func Fail(code int, message string) Response[any] {
	return Response[any]{Code: code, Message: message}
}

// Pagination 分页信息，仅作描述
type Pagination struct {
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
	Total    int64 `json:"total"`
}

// ListResponse 列表响应
type ListResponse[T any] struct {
	List       []T        `json:"list"`
	Pagination Pagination `json:"pagination"`
}

// Blob 二进制响应
type Blob struct {
	Data        []byte
	ContentType string
	Filename    string
}
