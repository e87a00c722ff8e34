package view

import (
	"html/template"

	"lb-front/router"

	"github.com/gin-gonic/gin"
)

type About struct {
	deps Deps
	tpl  *template.Template
}

func NewAbout(deps Deps) (*About, error) {
	tpl, err := parse("about")
	if err != nil {
		return nil, err
	}
	return &About{deps: deps, tpl: tpl}, nil
}

func (a *About) Name() string {
	return "About"
}

func (a *About) Render(c *gin.Context, _ router.Props) {
	renderHTML(c, a.tpl, "about", a.deps.Page("关于"))
}
