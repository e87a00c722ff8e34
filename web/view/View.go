package view

import (
	"embed"
	"html/template"
	"net/http"

	"lb-front/notify"
	"lb-front/request"
	"lb-front/router"
	"lb-front/store"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

//go:embed templates/*.html
var templateFS embed.FS

// Deps 视图依赖
type Deps struct {
	Client  *request.Client
	Store   *store.MainStore
	History *notify.History
	Loading *request.Loading
}

// Page 所有页面共用的数据
type Page struct {
	Title    string
	Loading  bool
	Messages []notify.Message
}

func (d Deps) Page(title string) Page {
	p := Page{Title: title}
	if d.Loading != nil {
		p.Loading = d.Loading.Visible()
	}
	if d.History != nil {
		p.Messages = d.History.Messages()
	}
	return p
}

// parse 加载 layout 与页面模板，在路由首次命中时调用
func parse(name string) (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
}

func renderHTML(c *gin.Context, tpl *template.Template, name string, data any) {
	c.Render(http.StatusOK, render.HTML{Template: tpl, Name: name, Data: data})
}

// Loader 将视图构造函数包装为路由的懒加载函数
func Loader[V router.View](build func(Deps) (V, error), deps Deps) router.Loader {
	return func() (router.View, error) {
		v, err := build(deps)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}
