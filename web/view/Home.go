package view

import (
	"html/template"

	"lb-front/api"
	"lb-front/entity/vo"
	"lb-front/request"
	"lb-front/router"
	"lb-front/store"

	"github.com/gin-gonic/gin"
)

type Home struct {
	deps Deps
	tpl  *template.Template
}

func NewHome(deps Deps) (*Home, error) {
	tpl, err := parse("home")
	if err != nil {
		return nil, err
	}
	return &Home{deps: deps, tpl: tpl}, nil
}

func (h *Home) Name() string {
	return "Home"
}

func (h *Home) Render(c *gin.Context, _ router.Props) {
	data := struct {
		Page
		State      store.State
		Statistics vo.IssueStatistics
		Error      string
	}{State: h.deps.Store.State()}

	resp, err := api.IssueStatistics(c.Request.Context(), h.deps.Client, request.ShowLoading())
	if err != nil {
		data.Error = err.Error()
	} else {
		data.Statistics = resp.Data
	}
	data.Page = h.deps.Page("首页")
	renderHTML(c, h.tpl, "home", data)
}
