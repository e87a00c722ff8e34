package api

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"lb-front/entity/vo"
	"lb-front/request"
)

const issuePrefix = "/system/issue"

// IssueStatistics 获取Issue统计数据
func IssueStatistics(ctx context.Context, c *request.Client, opts ...request.CallOption) (*vo.Response[vo.IssueStatistics], error) {
	return request.Get[vo.IssueStatistics](ctx, c, issuePrefix+"/statistics", nil, opts...)
}

// IssueList 获取Issue列表
func IssueList(ctx context.Context, c *request.Client, query vo.IssueQuery, opts ...request.CallOption) (*vo.Response[vo.IssuePage], error) {
	return request.Get[vo.IssuePage](ctx, c, issuePrefix+"/list", query, opts...)
}

// IssueListPost 获取Issue列表（POST方式）
func IssueListPost(ctx context.Context, c *request.Client, query vo.IssueQuery, opts ...request.CallOption) (*vo.Response[vo.IssuePage], error) {
	return request.Post[vo.IssuePage](ctx, c, issuePrefix+"/list", query, opts...)
}

// IssueDetail 获取Issue详细信息
func IssueDetail(ctx context.Context, c *request.Client, id string, opts ...request.CallOption) (*vo.Response[vo.Issue], error) {
	return request.Get[vo.Issue](ctx, c, issuePrefix+"/"+url.PathEscape(id), nil, opts...)
}

// IssueAdd 新增Issue
func IssueAdd(ctx context.Context, c *request.Client, issue vo.Issue, opts ...request.CallOption) (*vo.Response[any], error) {
	return request.Post[any](ctx, c, issuePrefix, issue, opts...)
}

// IssueEdit 编辑Issue
func IssueEdit(ctx context.Context, c *request.Client, issue vo.Issue, opts ...request.CallOption) (*vo.Response[any], error) {
	return request.Put[any](ctx, c, issuePrefix, issue, opts...)
}

// IssueDelete 删除Issue，多个id以逗号拼接
func IssueDelete(ctx context.Context, c *request.Client, ids []int64, opts ...request.CallOption) (*vo.Response[any], error) {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatInt(id, 10))
	}
	return request.Delete[any](ctx, c, issuePrefix+"/"+strings.Join(parts, ","), nil, opts...)
}

// IssueExport 导出Issue列表
func IssueExport(ctx context.Context, c *request.Client, query vo.IssueQuery, opts ...request.CallOption) (*vo.Blob, error) {
	return request.GetBlob(ctx, c, issuePrefix+"/export", query, opts...)
}
