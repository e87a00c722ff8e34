package controller

import (
	"net/http"
	"strings"

	"lb-front/entity/vo"
	"lb-front/global"

	"github.com/gin-gonic/gin"
)

type AuthApi struct {
	App *global.App
}

type tokenReq struct {
	Token string `json:"token"`
}

// 保存token，相当于写入 localStorage
func (api AuthApi) SetTokenController(c *gin.Context) {
	var req tokenReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, vo.Fail(http.StatusBadRequest, "请求参数错误: "+err.Error()))
		return
	}
	token := strings.TrimSpace(req.Token)
	if token == "" {
		c.JSON(http.StatusOK, vo.Fail(http.StatusBadRequest, "token 不能为空"))
		return
	}
	if err := api.App.Storage.SetItem(api.App.TokenKey(), token); err != nil {
		c.JSON(http.StatusOK, vo.Fail(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, vo.Ok[any](nil, "token已保存"))
}

// 清除token
func (api AuthApi) ClearTokenController(c *gin.Context) {
	if err := api.App.Storage.RemoveItem(api.App.TokenKey()); err != nil {
		c.JSON(http.StatusOK, vo.Fail(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, vo.Ok[any](nil, "token已清除"))
}
