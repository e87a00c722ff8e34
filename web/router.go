package web

import (
	"net/http"

	"lb-front/global"
	"lb-front/router"
	"lb-front/web/controller"
	"lb-front/web/view"

	"github.com/gin-gonic/gin"
)

// Routes 页面路由表，视图在首次访问时加载
func Routes(app *global.App) []router.Route {
	deps := view.Deps{Client: app.Client, Store: app.Store, History: app.History, Loading: app.Loading}
	return []router.Route{
		{Path: "/", Name: "Home", Component: view.Loader(view.NewHome, deps)},
		{Path: "/about", Name: "About", Component: view.Loader(view.NewAbout, deps)},
		{Path: "/detail", Name: "detail", Component: view.Loader(view.NewDetail, deps), Props: router.QueryProps("id")},
	}
}

// PageRouter 将路由表注册为 GET 页面
func (g Group) PageRouter(pages *router.Router) {
	for _, route := range pages.Routes() {
		g.GET(route.Path, renderRoute(pages))
	}
}

func (g Group) ApiRouter(app *global.App, proxy *http.Client) {
	storeApi := controller.StoreApi{App: app}
	authApi := controller.AuthApi{App: app}
	noticeApi := controller.NoticeApi{App: app}

	g.Any("/api/*path", ProxyApi(app.Config.Setting.ServerSetting.ProxyTarget, proxy)) //开发代理

	g.GET("/store", storeApi.StateController)                //当前状态
	g.POST("/store/increment", storeApi.IncrementController) //计数加一
	g.POST("/store/decrement", storeApi.DecrementController) //计数减一
	g.POST("/store/reset", storeApi.ResetController)         //计数归零
	g.PUT("/store/user", storeApi.SetUserController)         //设置用户
	g.GET("/store/stream", storeApi.StreamController)        //状态推送
	g.PUT("/auth/token", authApi.SetTokenController)         //保存token
	g.DELETE("/auth/token", authApi.ClearTokenController)    //清除token
	g.GET("/notice", noticeApi.NoticeListController)         //最近通知
}

func renderRoute(pages *router.Router) gin.HandlerFunc {
	return func(c *gin.Context) {
		match, err := pages.Resolve(c.Request.URL.Path, c.Request.URL.Query())
		if err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
		match.View.Render(c, match.Props)
	}
}
