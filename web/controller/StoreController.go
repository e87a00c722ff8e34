package controller

import (
	"net/http"

	"lb-front/entity/vo"
	"lb-front/global"
	"lb-front/store"

	"github.com/gin-gonic/gin"
)

type StoreApi struct {
	App *global.App
}

// 获取当前状态
func (api StoreApi) StateController(c *gin.Context) {
	c.JSON(http.StatusOK, vo.Ok(api.App.Store.State(), ""))
}

// 计数加一
func (api StoreApi) IncrementController(c *gin.Context) {
	api.App.Store.Increment()
	c.JSON(http.StatusOK, vo.Ok(api.App.Store.State(), ""))
}

// 计数减一
func (api StoreApi) DecrementController(c *gin.Context) {
	api.App.Store.Decrement()
	c.JSON(http.StatusOK, vo.Ok(api.App.Store.State(), ""))
}

// 计数归零
func (api StoreApi) ResetController(c *gin.Context) {
	api.App.Store.Reset()
	c.JSON(http.StatusOK, vo.Ok(api.App.Store.State(), ""))
}

// 设置当前用户，body 任意 JSON
func (api StoreApi) SetUserController(c *gin.Context) {
	var user any
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, vo.Fail(http.StatusBadRequest, "请求参数错误: "+err.Error()))
		return
	}
	api.App.Store.SetUser(user)
	c.JSON(http.StatusOK, vo.Ok(api.App.Store.State(), ""))
}

// 状态推送，先推送当前状态，之后每次变更推送一次
func (api StoreApi) StreamController(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	states := make(chan store.State, 16)
	unsubscribe := api.App.Store.Subscribe(func(st store.State) {
		select {
		case states <- st:
		default: //客户端消费过慢时丢弃中间状态
		}
	})
	defer unsubscribe()

	c.SSEvent("state", api.App.Store.State())
	c.Writer.Flush()
	for {
		select {
		case <-c.Request.Context().Done():
			return
		case st := <-states:
			c.SSEvent("state", st)
			c.Writer.Flush()
		}
	}
}
