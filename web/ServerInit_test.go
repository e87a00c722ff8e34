package web

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"lb-front/config"
	"lb-front/entity/vo"
	"lb-front/global"
	"lb-front/request"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type backend struct {
	mu       sync.Mutex
	authSeen []string
	server   *httptest.Server
}

func newBackend(t *testing.T) *backend {
	t.Helper()
	b := &backend{}
	b.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.authSeen = append(b.authSeen, r.Header.Get("Authorization"))
		b.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/system/issue/statistics":
			io.WriteString(w, `{"code":200,"message":"ok","data":{"pending":3}}`)
		case "/api/system/issue/7":
			io.WriteString(w, `{"code":200,"message":"ok","data":{"issueId":7,"title":"蓝屏","status":"pending"}}`)
		case "/api/system/issue/8":
			io.WriteString(w, `{"code":500,"message":"Issue不存在"}`)
		case "/api/ping":
			w.Header().Set("X-Backend", "1")
			w.WriteHeader(http.StatusTeapot)
			io.WriteString(w, r.Method+" "+r.URL.RawQuery)
		default:
			if strings.HasPrefix(r.URL.Path, "/api/files/") {
				io.WriteString(w, r.URL.EscapedPath())
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(b.server.Close)
	return b
}

func newTestApp(t *testing.T, b *backend, assetsDir string) (*global.App, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.DefaultConfig()
	cfg.Setting.ApiSetting.BaseUrl = b.server.URL + "/api"
	cfg.Setting.ServerSetting.ProxyTarget = b.server.URL
	cfg.Setting.ServerSetting.AssetsDir = assetsDir

	app := global.NewApp(cfg, nil)
	engine, err := serverInit(app)
	require.NoError(t, err)
	return app, engine
}

func do(engine *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestDetailPageWithToken(t *testing.T) {
	b := newBackend(t)
	_, engine := newTestApp(t, b, t.TempDir())

	w := do(engine, http.MethodPut, "/auth/token", `{"token":"abc"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"code":200`)

	w = do(engine, http.MethodGet, "/detail?id=7", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "蓝屏")
	assert.Contains(t, b.authSeen, "Bearer abc")
}

func TestDetailPageApplicationError(t *testing.T) {
	b := newBackend(t)
	app, engine := newTestApp(t, b, t.TempDir())
	require.NoError(t, app.Storage.SetItem("token", "abc"))

	w := do(engine, http.MethodGet, "/detail?id=8", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Issue不存在")
	last, ok := app.History.Last()
	require.True(t, ok)
	assert.Equal(t, "Issue不存在", last.Message)
	assert.False(t, app.Loading.Visible())
}

func TestDetailPageWithoutToken(t *testing.T) {
	b := newBackend(t)
	app, engine := newTestApp(t, b, t.TempDir())

	w := do(engine, http.MethodGet, "/detail?id=7", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), request.MsgSessionExpired)
	assert.Empty(t, b.authSeen)
	last, _ := app.History.Last()
	assert.Equal(t, request.MsgSessionExpired, last.Message)
}

func TestDetailPageMissingID(t *testing.T) {
	b := newBackend(t)
	_, engine := newTestApp(t, b, t.TempDir())

	w := do(engine, http.MethodGet, "/detail", "")
	assert.Contains(t, w.Body.String(), "缺少参数 id")
	assert.Empty(t, b.authSeen)
}

func TestStoreEndpoints(t *testing.T) {
	b := newBackend(t)
	app, engine := newTestApp(t, b, t.TempDir())

	for i := 0; i < 3; i++ {
		do(engine, http.MethodPost, "/store/increment", "")
	}
	w := do(engine, http.MethodGet, "/store", "")
	assert.JSONEq(t, `{"code":200,"message":"success","data":{"count":3,"doubleCount":6,"user":null}}`, w.Body.String())

	w = do(engine, http.MethodPut, "/store/user", `{"id":1,"username":"admin"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"id": float64(1), "username": "admin"}, app.Store.User())

	do(engine, http.MethodPost, "/store/decrement", "")
	assert.Equal(t, 2, app.Store.Count())
	do(engine, http.MethodPost, "/store/reset", "")
	assert.Equal(t, 0, app.Store.Count())

	w = do(engine, http.MethodPut, "/store/user", `{bad`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClearToken(t *testing.T) {
	b := newBackend(t)
	app, engine := newTestApp(t, b, t.TempDir())
	require.NoError(t, app.Storage.SetItem("token", "abc"))

	w := do(engine, http.MethodDelete, "/auth/token", "")
	require.Equal(t, http.StatusOK, w.Code)
	_, ok, err := app.Storage.GetItem("token")
	require.NoError(t, err)
	assert.False(t, ok)

	w = do(engine, http.MethodPut, "/auth/token", `{"token":"  "}`)
	assert.Contains(t, w.Body.String(), `"code":400`)
}

func TestHomeAndHistoryFallback(t *testing.T) {
	b := newBackend(t)
	app, engine := newTestApp(t, b, t.TempDir())
	require.NoError(t, app.Storage.SetItem("token", "abc"))
	app.Store.Increment()

	w := do(engine, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `<span id="doubleCount">2</span>`)
	assert.Contains(t, w.Body.String(), "pending: 3")

	w = do(engine, http.MethodGet, "/account/list", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `<span id="count">1</span>`)

	w = do(engine, http.MethodGet, "/about", "")
	assert.Contains(t, w.Body.String(), "关于")

	w = do(engine, http.MethodPost, "/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHistoryFallbackServesIndex(t *testing.T) {
	b := newBackend(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<div id=app></div>"), 0644))
	_, engine := newTestApp(t, b, dir)

	w := do(engine, http.MethodGet, "/account/list", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<div id=app></div>")
}

func TestApiProxy(t *testing.T) {
	b := newBackend(t)
	_, engine := newTestApp(t, b, t.TempDir())

	req := httptest.NewRequest(http.MethodPost, "/api/ping?x=1", strings.NewReader("{}"))
	req.Header.Set("Authorization", "Bearer passthrough")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-Backend"))
	assert.Equal(t, "POST x=1", w.Body.String())
	assert.Contains(t, b.authSeen, "Bearer passthrough")
}

func TestApiProxyBackendDown(t *testing.T) {
	b := newBackend(t)
	_, engine := newTestApp(t, b, t.TempDir())
	b.server.Close()

	w := do(engine, http.MethodGet, "/api/ping", "")
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestStoreStream(t *testing.T) {
	b := newBackend(t)
	app, engine := newTestApp(t, b, t.TempDir())
	srv := httptest.NewServer(engine)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/store/stream", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	reader := bufio.NewReader(resp.Body)
	nextData := func() string {
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			if strings.HasPrefix(line, "data:") {
				return line
			}
		}
	}

	assert.Contains(t, nextData(), `"count":0`)
	app.Store.Increment()
	assert.Contains(t, nextData(), `"count":1`)
}

func TestApiProxyKeepsEscapedPath(t *testing.T) {
	b := newBackend(t)
	_, engine := newTestApp(t, b, t.TempDir())

	w := do(engine, http.MethodGet, "/api/files/a%2Fb%3Fc", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/api/files/a%2Fb%3Fc", w.Body.String())
}

func TestNoticeAfterFailedView(t *testing.T) {
	b := newBackend(t)
	app, engine := newTestApp(t, b, t.TempDir())
	require.NoError(t, app.Storage.SetItem("token", "abc"))

	do(engine, http.MethodGet, "/detail?id=8", "")
	w := do(engine, http.MethodGet, "/notice", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp vo.Response[struct {
		Messages []struct {
			Kind    string `json:"kind"`
			Message string `json:"message"`
		} `json:"messages"`
		Loading bool `json:"loading"`
	}]
	require.NoError(t, request.Json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success())
	assert.False(t, resp.Data.Loading)
	require.Len(t, resp.Data.Messages, 1)
	assert.Equal(t, "error", resp.Data.Messages[0].Kind)
	assert.Equal(t, "Issue不存在", resp.Data.Messages[0].Message)
}

func TestCorsPreflight(t *testing.T) {
	b := newBackend(t)
	_, engine := newTestApp(t, b, t.TempDir())

	req := httptest.NewRequest(http.MethodOptions, "/store", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Headers", "authorization,x-request-id")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "X-Request-Id")
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}
