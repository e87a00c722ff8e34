package vo

// IssueSystemEnv 提交问题时的系统环境
type IssueSystemEnv struct {
	CpuInfo          string `json:"cpuInfo,omitempty"`
	MemoryInfo       string `json:"memoryInfo,omitempty"`
	GpuInfo          string `json:"gpuInfo,omitempty"`
	OsInfo           string `json:"osInfo,omitempty"`
	GpuDriverVersion string `json:"gpuDriverVersion,omitempty"`
	BiosVersion      string `json:"biosVersion,omitempty"`
}

type Issue struct {
	IssueId     int64           `json:"issueId,omitempty"`
	Title       string          `json:"title"`
	Priority    string          `json:"priority,omitempty"`
	Status      string          `json:"status,omitempty"`
	IssueType   string          `json:"issueType,omitempty"`
	Description string          `json:"description,omitempty"`
	IssueSource string          `json:"issueSource,omitempty"`
	SystemEnv   *IssueSystemEnv `json:"systemEnv,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
	CreateTime  string          `json:"createTime,omitempty"`
	UpdateTime  string          `json:"updateTime,omitempty"`
}

// IssueQuery 列表查询条件，零值字段不会作为参数发送
type IssueQuery struct {
	PageNum   int    `json:"pageNum,omitempty"`
	PageSize  int    `json:"pageSize,omitempty"`
	Title     string `json:"title,omitempty"`
	Status    string `json:"status,omitempty"`
	Priority  string `json:"priority,omitempty"`
	IssueType string `json:"issueType,omitempty"`
}

// IssueStatistics 后端统计字段不固定，按map接收
type IssueStatistics map[string]any

// IssuePage 后端分页结构
type IssuePage struct {
	Rows     []Issue `json:"rows"`
	PageNum  int     `json:"pageNum"`
	PageSize int     `json:"pageSize"`
	Total    int64   `json:"total"`
	HasNext  bool    `json:"hasNext"`
}

// ToList 转换为通用列表结构
func (p IssuePage) ToList() ListResponse[Issue] {
	return ListResponse[Issue]{
		List:       p.Rows,
		Pagination: Pagination{Page: p.PageNum, PageSize: p.PageSize, Total: p.Total},
	}
}
