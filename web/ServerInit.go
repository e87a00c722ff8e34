package web

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"lb-front/global"
	"lb-front/router"

	"github.com/gin-gonic/gin"
	lg "github.com/yatori-dev/yatori-go-core/utils/log"
)

// ServiceInit 初始化并启动服务，阻塞直到服务退出
func ServiceInit(app *global.App) error {
	if app == nil {
		return errNilApp
	}
	initServer, err := serverInit(app)
	if err != nil {
		return err
	}
	addr := app.Config.Setting.ServerSetting.Addr()
	lg.Print(lg.INFO, lg.Green, "服务已启动: ", addr)
	return initServer.Run(addr)
}

type Group struct {
	*gin.RouterGroup
}

// serverInit 初始化gin
func serverInit(app *global.App) (*gin.Engine, error) {
	pages, err := router.New(Routes(app)...)
	if err != nil {
		return nil, err
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(Cors())             // CORS
	engine.Use(LoggerMiddleware()) // 日志中间件

	// 静态资源（前端构建产物）
	assetsDir := app.Config.Setting.ServerSetting.AssetsDir
	engine.Static("/assets", filepath.Join(assetsDir, "assets"))

	routerGroup := Group{&engine.RouterGroup}
	routerGroup.ApiRouter(app, proxyClient())
	routerGroup.PageRouter(pages)

	// history 模式兜底：存在构建产物时返回 index.html，否则渲染首页
	index := filepath.Join(assetsDir, "index.html")
	engine.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.JSON(http.StatusNotFound, gin.H{"code": http.StatusNotFound, "message": "接口不存在"})
			return
		}
		if _, err := os.Stat(index); err == nil {
			c.File(index)
			return
		}
		match, err := pages.Resolve("/", c.Request.URL.Query())
		if err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
		match.View.Render(c, match.Props)
	})

	return engine, nil
}

// proxyClient 代理不跟随重定向，交给浏览器处理
func proxyClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{Proxy: http.ProxyFromEnvironment},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// 与请求客户端发送的头保持一致
const (
	corsMethods = "GET, POST, PUT, DELETE, OPTIONS"
	corsHeaders = "Origin, Accept, Content-Type, Authorization, X-Request-Id"
)

// Cors 跨域组件
func Cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", corsMethods)
		c.Header("Access-Control-Allow-Headers", corsHeaders)
		c.Header("Access-Control-Expose-Headers", "Content-Disposition, X-Request-Id") //导出文件名与请求ID

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// LoggerMiddleware 记录请求方法、路径、状态码与耗时
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		status := c.Writer.Status()
		cost := time.Since(start).String()
		if status >= http.StatusInternalServerError {
			lg.Print(lg.INFO, lg.Red, c.Request.Method, " ", c.Request.URL.Path, " ", http.StatusText(status), " ", cost)
			return
		}
		lg.Print(lg.DEBUG, c.Request.Method, " ", c.Request.URL.Path, " ", http.StatusText(status), " ", cost)
	}
}

var errNilApp = errors.New("app is nil")
