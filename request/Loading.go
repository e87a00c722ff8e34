package request

import "sync"

// Loading 全局加载提示，按引用计数开关
//
// 并发请求共享同一个提示，最后一个请求结束时才关闭。
// OnChange 注册的回调在锁内执行，回调中不能再调用 Loading 的方法。
type Loading struct {
	mu    sync.Mutex
	count int
	hooks []func(visible bool)
}

func NewLoading() *Loading {
	return &Loading{}
}

// Open 请求开始
func (l *Loading) Open() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.count++
	if l.count == 1 {
		l.fire(true)
	}
}

// Close 请求结束，计数不会小于0
func (l *Loading) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.count == 0 {
		return
	}
	l.count--
	if l.count == 0 {
		l.fire(false)
	}
}

func (l *Loading) Visible() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.count > 0
}

// Count 进行中的加载请求数
func (l *Loading) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.count
}

// OnChange 提示显示/隐藏时回调
func (l *Loading) OnChange(fn func(visible bool)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.hooks = append(l.hooks, fn)
}

func (l *Loading) fire(visible bool) {
	for _, fn := range l.hooks {
		fn(visible)
	}
}
