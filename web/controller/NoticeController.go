package controller

import (
	"net/http"

	"lb-front/entity/vo"
	"lb-front/global"

	"github.com/gin-gonic/gin"
)

type NoticeApi struct {
	App *global.App
}

// 最近的通知与加载状态
func (api NoticeApi) NoticeListController(c *gin.Context) {
	c.JSON(http.StatusOK, vo.Ok(gin.H{
		"messages": api.App.History.Messages(),
		"loading":  api.App.Loading.Visible(),
	}, ""))
}
