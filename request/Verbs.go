package request

import (
	"context"
	"fmt"
	"net/http"

	"lb-front/entity/vo"
)

// CallOption 单次调用的附加配置
type CallOption func(*Request)

// ShowLoading 调用期间打开全局加载提示
func ShowLoading() CallOption {
	return func(r *Request) {
		r.Loading = true
	}
}

// SkipAuth 不携带 token
func SkipAuth() CallOption {
	return func(r *Request) {
		r.SkipAuth = true
	}
}

func Header(key, value string) CallOption {
	return func(r *Request) {
		if r.Header == nil {
			r.Header = make(http.Header)
		}
		r.Header.Set(key, value)
	}
}

// Get 返回完整的 envelope，data 按 R 解码
func Get[R any](ctx context.Context, c *Client, url string, params any, opts ...CallOption) (*vo.Response[R], error) {
	return call[R](ctx, c, &Request{Method: http.MethodGet, URL: url, Params: params}, opts)
}

// GetBlob 下载二进制内容，响应为 JSON 时按 envelope 处理
func GetBlob(ctx context.Context, c *Client, url string, params any, opts ...CallOption) (*vo.Blob, error) {
	r := &Request{Method: http.MethodGet, URL: url, Params: params, ResponseType: ResponseBlob}
	for _, opt := range opts {
		opt(r)
	}
	res, err := c.Do(ctx, r)
	if err != nil {
		return nil, err
	}
	if res.Blob != nil {
		return res.Blob, nil
	}
	//后端以 envelope 成功返回时，原样作为 JSON 内容交给调用方
	return &vo.Blob{Data: res.Body, ContentType: res.Header.Get("Content-Type")}, nil
}

func Post[R any](ctx context.Context, c *Client, url string, data any, opts ...CallOption) (*vo.Response[R], error) {
	return call[R](ctx, c, &Request{Method: http.MethodPost, URL: url, Data: data}, opts)
}

func Put[R any](ctx context.Context, c *Client, url string, data any, opts ...CallOption) (*vo.Response[R], error) {
	return call[R](ctx, c, &Request{Method: http.MethodPut, URL: url, Data: data}, opts)
}

func Delete[R any](ctx context.Context, c *Client, url string, data any, opts ...CallOption) (*vo.Response[R], error) {
	return call[R](ctx, c, &Request{Method: http.MethodDelete, URL: url, Data: data}, opts)
}

func call[R any](ctx context.Context, c *Client, r *Request, opts []CallOption) (*vo.Response[R], error) {
	for _, opt := range opts {
		opt(r)
	}
	res, err := c.Do(ctx, r)
	if err != nil {
		return nil, err
	}
	if res == nil || res.Envelope == nil {
		return nil, fmt.Errorf("%s %s: 响应缺少envelope", r.Method, r.URL)
	}
	out := &vo.Response[R]{Code: res.Envelope.Code, Message: res.Envelope.Message}
	if len(res.Envelope.Data) > 0 && string(res.Envelope.Data) != "null" {
		if err := Json.Unmarshal(res.Envelope.Data, &out.Data); err != nil {
			return out, fmt.Errorf("响应数据解析失败: %w", err)
		}
	}
	return out, nil
}
