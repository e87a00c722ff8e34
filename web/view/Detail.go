package view

import (
	"html/template"

	"lb-front/api"
	"lb-front/entity/vo"
	"lb-front/request"
	"lb-front/router"

	"github.com/gin-gonic/gin"
)

// Detail 问题详情页，id 由路由从查询参数传入
type Detail struct {
	deps Deps
	tpl  *template.Template
}

func NewDetail(deps Deps) (*Detail, error) {
	tpl, err := parse("detail")
	if err != nil {
		return nil, err
	}
	return &Detail{deps: deps, tpl: tpl}, nil
}

func (d *Detail) Name() string {
	return "detail"
}

func (d *Detail) Render(c *gin.Context, props router.Props) {
	data := struct {
		Page
		Issue *vo.Issue
		Error string
	}{}

	id := props["id"]
	if id == "" {
		data.Error = "缺少参数 id"
	} else {
		resp, err := api.IssueDetail(c.Request.Context(), d.deps.Client, id, request.ShowLoading())
		if err != nil {
			data.Error = err.Error()
		} else {
			data.Issue = &resp.Data
		}
	}
	data.Page = d.deps.Page("详情")
	renderHTML(c, d.tpl, "detail", data)
}
