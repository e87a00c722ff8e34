package router

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

var ErrNotFound = errors.New("route not found")

// Props 路由传给视图的参数
type Props map[string]string

// View 路由对应的页面
type View interface {
	Name() string
	Render(c *gin.Context, props Props)
}

// Loader 懒加载视图，每个路由最多调用一次
type Loader func() (View, error)

// PropsFunc 由查询参数生成 Props
type PropsFunc func(query url.Values) Props

type Route struct {
	Path      string
	Name      string
	Component Loader
	Props     PropsFunc
}

// Match 路由解析结果
type Match struct {
	Route Route
	View  View
	Props Props
}

type entry struct {
	route Route
	once  sync.Once
	view  View
	err   error
}

func (e *entry) load() (View, error) {
	e.once.Do(func() {
		e.view, e.err = e.route.Component()
		if e.err == nil && e.view == nil {
			e.err = fmt.Errorf("路由 %s 的视图为空", e.route.Path)
		}
	})
	return e.view, e.err
}

// Router 静态路由表，无守卫、无嵌套
type Router struct {
	entries []*entry
	byPath  map[string]*entry
}

func New(routes ...Route) (*Router, error) {
	r := &Router{byPath: make(map[string]*entry)}
	for _, route := range routes {
		route.Path = normalize(route.Path)
		if route.Component == nil {
			return nil, fmt.Errorf("路由 %s 未配置视图", route.Path)
		}
		if _, ok := r.byPath[route.Path]; ok {
			return nil, fmt.Errorf("路由 %s 重复", route.Path)
		}
		e := &entry{route: route}
		r.entries = append(r.entries, e)
		r.byPath[route.Path] = e
	}
	return r, nil
}

// Routes 按注册顺序返回
func (r *Router) Routes() []Route {
	out := make([]Route, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.route)
	}
	return out
}

// Resolve 按路径匹配并加载视图
func (r *Router) Resolve(path string, query url.Values) (*Match, error) {
	e, ok := r.byPath[normalize(path)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	view, err := e.load()
	if err != nil {
		return nil, err
	}
	props := Props{}
	if e.route.Props != nil {
		props = e.route.Props(query)
	}
	return &Match{Route: e.route, View: view, Props: props}, nil
}

// QueryProps 将指定查询参数原样作为 Props
func QueryProps(keys ...string) PropsFunc {
	return func(query url.Values) Props {
		props := Props{}
		for _, k := range keys {
			props[k] = query.Get(k)
		}
		return props
	}
}

func normalize(path string) string {
	if path == "" || path == "/" {
		return "/"
	}
	return "/" + strings.Trim(path, "/")
}
