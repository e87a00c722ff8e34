package store

import "sync"

// State 某一时刻的状态快照
type State struct {
	Count       int `json:"count"`
	DoubleCount int `json:"doubleCount"`
	User        any `json:"user"`
}

// MainStore 计数器与当前用户，由调用方持有，不做持久化
type MainStore struct {
	mu       sync.RWMutex
	notifyMu sync.Mutex //保证订阅者按变更顺序收到状态
	count    int
	user     any
	nextID   int
	subs     map[int]func(State)
}

func New() *MainStore {
	return &MainStore{subs: make(map[int]func(State))}
}

func (s *MainStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.count
}

// DoubleCount 计算属性，count * 2
func (s *MainStore) DoubleCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.count * 2
}

func (s *MainStore) User() any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *MainStore) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

func (s *MainStore) Increment() {
	s.mutate(func() { s.count++ })
}

func (s *MainStore) Decrement() {
	s.mutate(func() { s.count-- })
}

// Reset 只重置计数，不清空用户
func (s *MainStore) Reset() {
	s.mutate(func() { s.count = 0 })
}

func (s *MainStore) SetUser(user any) {
	s.mutate(func() { s.user = user })
}

// Subscribe 每次变更后以新状态回调，返回取消函数
func (s *MainStore) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// mutate 在锁内修改，随后串行通知订阅者
//
// 通知时重新读取状态，最后一次回调总是最新状态。回调中不能再修改 store。
func (s *MainStore) mutate(fn func()) {
	s.mu.Lock()
	fn()
	s.mu.Unlock()

	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()
	s.mu.RLock()
	state := s.snapshot()
	subs := make([]func(State), 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	s.mu.RUnlock()

	for _, sub := range subs {
		sub(state)
	}
}

func (s *MainStore) snapshot() State {
	return State{Count: s.count, DoubleCount: s.count * 2, User: s.user}
}
