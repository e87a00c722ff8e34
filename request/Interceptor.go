package request

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"path"
	"strings"

	"lb-front/entity/vo"
	"lb-front/notify"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/thedevsaddam/gojsonq"
	lg "github.com/yatori-dev/yatori-go-core/utils/log"
)

// RequestInterceptor 发送前处理请求，返回错误则中止发送
type RequestInterceptor func(c *Client, req *http.Request, r *Request) error

// ResponseInterceptor 处理响应或上一步的错误
type ResponseInterceptor func(c *Client, r *Request, res *Result, err error) (*Result, error)

// AuthInterceptor 从本地存储读取 token 并添加 Bearer 头
func AuthInterceptor(c *Client, req *http.Request, r *Request) error {
	if r.SkipAuth {
		return nil
	}
	if c.storage == nil {
		return ErrTokenMissing
	}
	token, ok, err := c.storage.GetItem(c.tokenKey)
	if err != nil {
		return fmt.Errorf("读取token失败: %w", err)
	}
	if !ok || strings.TrimSpace(token) == "" {
		return ErrTokenMissing
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return nil
}

// RequestIDInterceptor 为每个请求生成 X-Request-Id
func RequestIDInterceptor(_ *Client, req *http.Request, _ *Request) error {
	if req.Header.Get("X-Request-Id") == "" {
		req.Header.Set("X-Request-Id", uuid.NewString())
	}
	return nil
}

// EnvelopeInterceptor 解析 {code, message, data}，code 为 200 才算成功
//
// 失败时先弹出通知再返回错误，调用方无法阻止通知。
func EnvelopeInterceptor(c *Client, r *Request, res *Result, err error) (*Result, error) {
	if err != nil {
		return res, c.rejectTransport(res, err)
	}

	if r.ResponseType == ResponseBlob && !isJSON(res.Header.Get("Content-Type")) {
		res.Blob = &vo.Blob{
			Data:        res.Body,
			ContentType: res.Header.Get("Content-Type"),
			Filename:    filename(res.Header.Get("Content-Disposition")),
		}
		return res, nil
	}

	envelope, ok := parseEnvelope(res.Body)
	if !ok || envelope.Code != vo.CodeSuccess {
		message := envelope.Message
		if message == "" {
			message = MsgRequestFailed
		}
		c.notifier.Notify(notify.Error, message)
		return res, &ApplicationError{Code: envelope.Code, Message: message}
	}
	res.Envelope = envelope
	return res, nil
}

func (c *Client) rejectTransport(res *Result, err error) error {
	lg.Print(lg.INFO, lg.Red, "Response error: ", err.Error())

	var te *TransportError
	if !errors.As(err, &te) {
		te = &TransportError{Message: err.Error(), Err: err}
	}
	if errors.Is(err, ErrTokenMissing) {
		te.Status = http.StatusUnauthorized
	}
	if res != nil && len(res.Body) > 0 {
		if env, ok := parseEnvelope(res.Body); ok && env.Message != "" {
			lg.Print(lg.DEBUG, "Response error message: ", env.Message)
		}
	}

	if te.Status == http.StatusUnauthorized {
		c.notifier.Notify(notify.Error, MsgSessionExpired)
		return te
	}
	message := te.Message
	if message == "" {
		message = MsgNetworkError
	}
	c.notifier.Notify(notify.Error, message)
	return te
}

// parseEnvelope 读取 code/message，data 保留原始 JSON 延后解码
func parseEnvelope(body []byte) (*vo.Response[jsoniter.RawMessage], bool) {
	env := &vo.Response[jsoniter.RawMessage]{}
	jq := gojsonq.New().FromString(string(body))
	if jq.Error() != nil {
		return env, false
	}
	code, isNumber := jq.Find("code").(float64)
	jq.Reset()
	if message, ok := jq.Find("message").(string); ok {
		env.Message = message
	}
	if !isNumber || code != float64(int(code)) {
		return env, false
	}
	env.Code = int(code)

	var raw struct {
		Data jsoniter.RawMessage `json:"data"`
	}
	if err := Json.Unmarshal(body, &raw); err != nil {
		return env, false
	}
	env.Data = raw.Data
	return env, true
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

func filename(disposition string) string {
	if disposition == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return ""
	}
	if params["filename"] == "" {
		return ""
	}
	return path.Base(params["filename"])
}
