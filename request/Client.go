package request

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"lb-front/config"
	"lb-front/entity/vo"
	"lb-front/notify"
	"lb-front/storage"

	jsoniter "github.com/json-iterator/go"
	lg "github.com/yatori-dev/yatori-go-core/utils/log"
)

var Json = jsoniter.ConfigCompatibleWithStandardLibrary

// ResponseType 期望的响应体类型
type ResponseType int

const (
	ResponseJSON ResponseType = iota
	ResponseBlob
)

// Request 一次接口调用
type Request struct {
	Method       string
	URL          string //相对 baseURL 的路径，或以 http 开头的完整地址
	Params       any    //查询参数
	Data         any    //请求体，[]byte / io.Reader 原样发送，其余按 JSON 编码
	Header       http.Header
	ResponseType ResponseType
	Loading      bool //是否打开全局加载提示
	SkipAuth     bool //不携带 token，如登录接口
}

// Result 拦截器处理后的响应
type Result struct {
	Status   int
	Header   http.Header
	Body     []byte
	Envelope *vo.Response[jsoniter.RawMessage]
	Blob     *vo.Blob
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	storage    storage.Storage
	tokenKey   string
	notifier   notify.Notifier
	loading    *Loading

	requestInterceptors  []RequestInterceptor
	responseInterceptors []ResponseInterceptor
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTimeout 仅在未指定 http.Client 时生效
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient = httpClient(timeout)
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithStorage(s storage.Storage) Option {
	return func(c *Client) {
		c.storage = s
	}
}

func WithTokenKey(key string) Option {
	return func(c *Client) {
		c.tokenKey = key
	}
}

func WithNotifier(n notify.Notifier) Option {
	return func(c *Client) {
		c.notifier = n
	}
}

func WithLoading(l *Loading) Option {
	return func(c *Client) {
		c.loading = l
	}
}

// WithRequestInterceptor 追加请求拦截器，在内置拦截器之后执行
func WithRequestInterceptor(ic RequestInterceptor) Option {
	return func(c *Client) {
		c.requestInterceptors = append(c.requestInterceptors, ic)
	}
}

// WithResponseInterceptor 追加响应拦截器，在 envelope 解析之后执行
func WithResponseInterceptor(ic ResponseInterceptor) Option {
	return func(c *Client) {
		c.responseInterceptors = append(c.responseInterceptors, ic)
	}
}

// New 创建请求客户端，默认带 token 注入、请求ID与 envelope 解析
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:              strings.TrimRight(config.DefaultOrigin+config.DefaultBaseURL, "/"),
		tokenKey:             config.DefaultTokenKey,
		notifier:             notify.LogNotifier{},
		loading:              NewLoading(),
		requestInterceptors:  []RequestInterceptor{AuthInterceptor, RequestIDInterceptor},
		responseInterceptors: []ResponseInterceptor{EnvelopeInterceptor},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = httpClient(time.Duration(config.DefaultTimeout) * time.Millisecond)
	}
	return c
}

// NewFromConfig 按配置文件创建
func NewFromConfig(api config.ApiSetting, opts ...Option) *Client {
	base := []Option{WithBaseURL(api.ApiBaseURL())}
	if api.Timeout > 0 {
		base = append(base, WithTimeout(api.TimeoutDuration()))
	}
	if api.TokenKey != "" {
		base = append(base, WithTokenKey(api.TokenKey))
	}
	return New(append(base, opts...)...)
}

func httpClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
		},
		Timeout: timeout,
	}
}

func (c *Client) Loading() *Loading {
	return c.loading
}

func (c *Client) Notifier() notify.Notifier {
	return c.notifier
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do 执行请求：请求拦截器 → 发送 → 响应拦截器
//
// 请求拦截器返回的错误不会发出请求，但同样交给响应拦截器处理。
func (c *Client) Do(ctx context.Context, r *Request) (*Result, error) {
	if r.Loading {
		c.loading.Open()
		defer c.loading.Close()
	}

	var res *Result
	req, err := c.newHTTPRequest(ctx, r)
	if err == nil {
		for _, ic := range c.requestInterceptors {
			if err = ic(c, req, r); err != nil {
				break
			}
		}
	}
	if err != nil {
		lg.Print(lg.INFO, lg.Red, "Request error: ", err.Error())
	} else {
		res, err = c.send(req)
	}

	for _, ic := range c.responseInterceptors {
		res, err = ic(c, r, res, err)
	}
	return res, err
}

func (c *Client) resolveURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if path == "" {
		return c.baseURL
	}
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

func (c *Client) newHTTPRequest(ctx context.Context, r *Request) (*http.Request, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	method := strings.ToUpper(r.Method)
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	contentType := ""
	switch d := r.Data.(type) {
	case nil:
	case []byte:
		body = bytes.NewReader(d)
	case io.Reader:
		body = d
	default:
		data, err := Json.Marshal(d)
		if err != nil {
			return nil, fmt.Errorf("请求体编码失败: %w", err)
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, c.resolveURL(r.URL), body)
	if err != nil {
		return nil, fmt.Errorf("创建请求失败: %w", err)
	}

	values, err := toValues(r.Params)
	if err != nil {
		return nil, err
	}
	if len(values) > 0 {
		q := req.URL.Query()
		for k, vs := range values {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		req.URL.RawQuery = q.Encode()
	}

	req.Header.Set("Accept", "application/json, text/plain, */*")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, vs := range r.Header {
		req.Header.Del(k)
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	return req, nil
}

// send 发出请求，非 2xx 视为传输层失败
func (c *Client) send(req *http.Request) (*Result, error) {
	lg.Print(lg.DEBUG, "[", req.Method, "] ", req.URL.String())
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	res := &Result{Status: resp.StatusCode, Header: resp.Header, Body: body}
	if err != nil {
		return res, &TransportError{Status: resp.StatusCode, Message: err.Error(), Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return res, &TransportError{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("Request failed with status code %d", resp.StatusCode),
		}
	}
	return res, nil
}
