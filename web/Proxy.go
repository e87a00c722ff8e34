package web

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	lg "github.com/yatori-dev/yatori-go-core/utils/log"
)

// hop-by-hop 头不转发
var hopHeaders = []string{
	"Connection", "Keep-Alive", "Proxy-Authenticate", "Proxy-Authorization",
	"Te", "Trailer", "Transfer-Encoding", "Upgrade",
}

// ProxyApi 将 /api/ 下的请求原样转发给后端，保留原始 Host
func ProxyApi(target string, client *http.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := proxyRequest(c, target, client); err != nil {
			lg.Print(lg.INFO, lg.Red, "代理请求失败: ", err.Error())
			c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{
				"code":    http.StatusBadGateway,
				"message": err.Error(),
			})
		}
	}
}

func proxyRequest(c *gin.Context, target string, client *http.Client) error {
	// 1 解析远程地址，保留客户端的原始编码
	rmtUrl, err := url.Parse(strings.TrimRight(target, "/") + c.Request.URL.EscapedPath())
	if err != nil {
		return fmt.Errorf("解析远程地址失败: %v", err)
	}

	// 2 拷贝 query 参数
	rmtUrl.RawQuery = c.Request.URL.RawQuery

	req, err := http.NewRequestWithContext(c.Request.Context(), c.Request.Method, rmtUrl.String(), c.Request.Body)
	if err != nil {
		return fmt.Errorf("创建请求失败: %v", err)
	}
	req.Header = c.Request.Header.Clone()
	for _, h := range hopHeaders {
		req.Header.Del(h)
	}
	req.Host = c.Request.Host
	req.ContentLength = c.Request.ContentLength

	// 3 发送请求
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("发送请求失败: %v", err)
	}
	defer resp.Body.Close()

	// 4 回写响应头
	for key, values := range resp.Header {
		for _, value := range values {
			c.Writer.Header().Add(key, value)
		}
	}
	for _, h := range hopHeaders {
		c.Writer.Header().Del(h)
	}
	c.Status(resp.StatusCode)

	// 5 回写响应体
	_, err = io.Copy(c.Writer, resp.Body)
	if err != nil {
		lg.Print(lg.INFO, lg.Red, "回写响应体失败: ", err.Error())
	}
	return nil
}
