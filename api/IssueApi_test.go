package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"lb-front/entity/vo"
	"lb-front/notify"
	"lb-front/request"
	"lb-front/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.HandlerFunc) *request.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	s := storage.NewMemory()
	require.NoError(t, s.SetItem("token", "tk"))
	return request.New(
		request.WithBaseURL(srv.URL+"/api"),
		request.WithStorage(s),
		request.WithNotifier(notify.NewHistory(5)),
	)
}

func ok(w http.ResponseWriter, data string) {
	w.Header().Set("Content-Type", "application/json")
	io.WriteString(w, `{"code":200,"message":"ok","data":`+data+`}`)
}

func TestIssueDetail(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/system/issue/7", r.URL.Path)
		ok(w, `{"issueId":7,"title":"蓝屏","tags":["bug"]}`)
	})
	resp, err := IssueDetail(context.Background(), c, "7")
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.Data.IssueId)
	assert.Equal(t, "蓝屏", resp.Data.Title)
	assert.Equal(t, []string{"bug"}, resp.Data.Tags)
}

func TestIssueList(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/system/issue/list", r.URL.Path)
		if r.Method == http.MethodGet {
			assert.Equal(t, "1", r.URL.Query().Get("pageNum"))
			assert.Equal(t, "pending", r.URL.Query().Get("status"))
		} else {
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"pageNum":1,"status":"pending"}`, string(body))
		}
		ok(w, `{"rows":[{"issueId":1,"title":"a"}],"pageNum":1,"pageSize":10,"total":1,"hasNext":false}`)
	})
	query := vo.IssueQuery{PageNum: 1, Status: "pending"}

	resp, err := IssueList(context.Background(), c, query)
	require.NoError(t, err)
	list := resp.Data.ToList()
	assert.Len(t, list.List, 1)
	assert.Equal(t, vo.Pagination{Page: 1, PageSize: 10, Total: 1}, list.Pagination)

	_, err = IssueListPost(context.Background(), c, query)
	require.NoError(t, err)
}

func TestIssueMutations(t *testing.T) {
	var calls []string
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		ok(w, `null`)
	})
	ctx := context.Background()

	_, err := IssueAdd(ctx, c, vo.Issue{Title: "x"})
	require.NoError(t, err)
	_, err = IssueEdit(ctx, c, vo.Issue{IssueId: 1, Title: "y"})
	require.NoError(t, err)
	_, err = IssueDelete(ctx, c, []int64{1, 2})
	require.NoError(t, err)
	_, err = IssueStatistics(ctx, c)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"POST /api/system/issue",
		"PUT /api/system/issue",
		"DELETE /api/system/issue/1,2",
		"GET /api/system/issue/statistics",
	}, calls)
}

func TestIssueExport(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/system/issue/export", r.URL.Path)
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Write([]byte("xlsx"))
	})
	blob, err := IssueExport(context.Background(), c, vo.IssueQuery{})
	require.NoError(t, err)
	assert.Equal(t, "xlsx", string(blob.Data))
}
